package blackjack

import "testing"

func mustCard(t *testing.T, suit, rank uint8) Card {
	t.Helper()
	card, err := NewCard(suit, rank)
	if err != nil {
		t.Fatal(err)
	}
	return card
}

// handOf builds a face-up hand from ranks, cycling suits so the cards stay
// distinct.
func handOf(t *testing.T, ranks ...uint8) Hand {
	t.Helper()
	var h Hand
	for i, rank := range ranks {
		h.TakeCard(mustCard(t, uint8(i%4), rank))
	}
	return h
}

func TestValueGrid(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []uint8
		expected int
	}{
		{"single ace", []uint8{Ace}, 11},
		{"blackjack", []uint8{Ace, King}, 21},
		{"double ace", []uint8{Ace, Ace}, 12},
		{"bust rescue", []uint8{Ace, 5, 8}, 14},
		{"ten nine ace", []uint8{10, 9, Ace}, 20},
		{"two aces nine", []uint8{Ace, Ace, 9}, 21},
		{"triple bust", []uint8{10, 5, 8}, 23},
		{"two tens five", []uint8{10, 10, 5}, 25},
		{"face cards", []uint8{Jack, Queen}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(t, tt.ranks...)
			if got := h.Value(true); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestValueOrderInvariant(t *testing.T) {
	orders := [][]uint8{
		{10, 9, Ace},
		{Ace, 10, 9},
		{9, Ace, 10},
	}
	for _, ranks := range orders {
		h := handOf(t, ranks...)
		if got := h.Value(true); got != 20 {
			t.Fatalf("order %v: expected 20, got %d", ranks, got)
		}
	}
}

func TestValueSkipsHiddenCards(t *testing.T) {
	var h Hand
	hole := mustCard(t, Spade, King)
	hole.Hide()
	h.TakeCard(hole)
	h.TakeCard(mustCard(t, Heart, 9))

	if got := h.Value(false); got != 9 {
		t.Fatalf("expected visible value 9, got %d", got)
	}
	if got := h.Value(true); got != 19 {
		t.Fatalf("expected full value 19, got %d", got)
	}
}

func TestValueSkipsHiddenAce(t *testing.T) {
	var h Hand
	hole := mustCard(t, Spade, Ace)
	hole.Hide()
	h.TakeCard(hole)
	h.TakeCard(mustCard(t, Club, 5))

	if got := h.Value(false); got != 5 {
		t.Fatalf("expected visible value 5, got %d", got)
	}
	if got := h.Value(true); got != 16 {
		t.Fatalf("expected full value 16, got %d", got)
	}
}

func TestIsBlackjack(t *testing.T) {
	if !handOf(t, Ace, King).IsBlackjack() {
		t.Fatal("ace and king must be a blackjack")
	}
	if handOf(t, 10, 9).IsBlackjack() {
		t.Fatal("19 is not a blackjack")
	}
	// any hand reaching 21 counts, not only the two-card deal
	if !handOf(t, 7, 7, 7).IsBlackjack() {
		t.Fatal("a drawn 21 must count as a blackjack")
	}
}

func TestIsBust(t *testing.T) {
	if !handOf(t, 10, 10, 5).IsBust() {
		t.Fatal("25 must be a bust")
	}
	if handOf(t, Ace, Ace, 9).IsBust() {
		t.Fatal("21 with downgraded aces is not a bust")
	}
}

func TestRevealAll(t *testing.T) {
	var h Hand
	hole := mustCard(t, Club, 2)
	hole.Hide()
	h.TakeCard(hole)
	h.TakeCard(mustCard(t, Diamond, 3))

	if !h.hasHidden() {
		t.Fatal("expected a hidden card before reveal")
	}
	h.RevealAll()
	if h.hasHidden() {
		t.Fatal("expected no hidden cards after reveal")
	}
	for _, c := range h.Cards() {
		if c.Hidden() {
			t.Fatalf("card %v still hidden after reveal", c)
		}
	}
}

func TestTakeAndDiscard(t *testing.T) {
	var h Hand
	h.TakeCard(mustCard(t, Club, 2))
	h.TakeCard(mustCard(t, Diamond, King))

	if h.Size() != 2 {
		t.Fatalf("expected 2 cards, got %d", h.Size())
	}
	cards := h.Cards()
	if cards[0].Rank() != 2 || cards[1].Rank() != King {
		t.Fatalf("cards out of order: %v", cards)
	}

	h.Discard()
	if h.Size() != 0 {
		t.Fatalf("expected empty hand after discard, got %d cards", h.Size())
	}
	if got := h.Value(true); got != 0 {
		t.Fatalf("expected value 0 after discard, got %d", got)
	}
}
