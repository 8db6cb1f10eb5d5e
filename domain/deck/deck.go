// Package deck deals a provably fair deck of raw card numbers: every
// shuffle is derived from a server/client seed pair and a round nonce, so a
// finished session can be replayed and audited once the server seed is
// revealed.
package deck

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Seeds key the shuffle stream. The server seed stays secret until the
// session ends; the client seed is the player's contribution; the nonce
// advances on every shuffle so each round gets a distinct permutation.
type Seeds struct {
	Server string
	Client string
	Nonce  uint64
}

// NewSeeds generates a random hex seed pair with the nonce at zero.
func NewSeeds() (Seeds, error) {
	server := make([]byte, 32)
	if _, err := rand.Read(server); err != nil {
		return Seeds{}, fmt.Errorf("generating server seed: %w", err)
	}
	client := make([]byte, 16)
	if _, err := rand.Read(client); err != nil {
		return Seeds{}, fmt.Errorf("generating client seed: %w", err)
	}
	return Seeds{
		Server: hex.EncodeToString(server),
		Client: hex.EncodeToString(client),
	}, nil
}

// Deck is an ordered pile of raw card numbers in 1..52, dealt from the top.
// It starts empty; Shuffle builds the first permutation.
type Deck struct {
	seeds Seeds
	cards []uint8
}

// NewDeck creates a deck keyed by the given seeds. No cards are available
// until the first Shuffle.
func NewDeck(seeds Seeds) *Deck {
	return &Deck{seeds: seeds}
}

// Draw removes and returns the top card number; the order of the remaining
// cards is unaffected. Drawing from an empty deck is an error; under a
// shuffle-per-round policy it cannot happen during play.
func (d *Deck) Draw() (uint8, error) {
	if len(d.cards) == 0 {
		return 0, fmt.Errorf("no cards left in the deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns how many cards are still in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Seeds returns the seed state, with the nonce the next shuffle will use.
func (d *Deck) Seeds() Seeds {
	return d.seeds
}

// Commitment returns the public commitment to the server seed: its SHA256
// hex digest. Publishing it before play lets the player check the seed
// revealed afterwards against it.
func (d *Deck) Commitment() string {
	sum := sha256.Sum256([]byte(d.seeds.Server))
	return hex.EncodeToString(sum[:])
}
