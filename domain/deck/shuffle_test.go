package deck

import "testing"

func TestShuffleIsPermutation(t *testing.T) {
	d := NewDeck(testSeeds())
	if err := d.Shuffle(); err != nil {
		t.Fatal(err)
	}
	seen := map[uint8]bool{}
	for _, card := range drawAll(t, d) {
		if card < 1 || card > 52 {
			t.Fatalf("card number %d out of range", card)
		}
		if seen[card] {
			t.Fatalf("card number %d dealt twice", card)
		}
		seen[card] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("expected %d distinct cards, got %d", DeckSize, len(seen))
	}
}

func TestShuffleDeterministic(t *testing.T) {
	d1 := NewDeck(testSeeds())
	d2 := NewDeck(testSeeds())
	if err := d1.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if err := d2.Shuffle(); err != nil {
		t.Fatal(err)
	}
	c1 := drawAll(t, d1)
	c2 := drawAll(t, d2)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("same seeds diverged at position %d: %d vs %d", i, c1[i], c2[i])
		}
	}
}

func TestNonceAdvancesPerShuffle(t *testing.T) {
	d := NewDeck(testSeeds())
	if d.Seeds().Nonce != 0 {
		t.Fatalf("expected nonce 0 before play, got %d", d.Seeds().Nonce)
	}
	if err := d.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if d.Seeds().Nonce != 1 {
		t.Fatalf("expected nonce 1 after one shuffle, got %d", d.Seeds().Nonce)
	}
	if err := d.Shuffle(); err != nil {
		t.Fatal(err)
	}
	second := drawAll(t, d)

	// a fresh deck starting at nonce 1 replays the second shuffle exactly
	seeds := testSeeds()
	seeds.Nonce = 1
	replay := NewDeck(seeds)
	if err := replay.Shuffle(); err != nil {
		t.Fatal(err)
	}
	got := drawAll(t, replay)
	for i := range second {
		if second[i] != got[i] {
			t.Fatalf("nonce replay diverged at position %d: %d vs %d", i, second[i], got[i])
		}
	}
}

func TestDifferentSeedsShuffleDifferently(t *testing.T) {
	d1 := NewDeck(testSeeds())
	other := testSeeds()
	other.Client = "ffffffffffffffff"
	d2 := NewDeck(other)
	if err := d1.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if err := d2.Shuffle(); err != nil {
		t.Fatal(err)
	}
	c1 := drawAll(t, d1)
	c2 := drawAll(t, d2)
	for i := range c1 {
		if c1[i] != c2[i] {
			return
		}
	}
	t.Fatal("different client seeds produced the identical permutation")
}
