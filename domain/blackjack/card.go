package blackjack

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (scores 11, downgraded to 1 on bust)
)

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

// Card represents a playing card with suit and rank. Suit and rank are
// fixed at construction; the visibility flag is the only state that changes
// during play.
type Card struct {
	suit     uint8 // 0-3: clubs, diamonds, hearts, spades
	rank     uint8 // 1-13: ace through king
	faceDown bool
}

// NewCard creates a new face-up Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ConvertCard maps a raw card number in 1..52 to its face-up Card. Suits
// occupy consecutive blocks of 13: 1-13 clubs, 14-26 diamonds, 27-39 hearts,
// 40-52 spades.
func ConvertCard(raw int) (Card, error) {
	if raw < 1 || raw > 52 {
		return Card{}, fmt.Errorf("invalid card number %d", raw)
	}
	return NewCard(uint8((raw-1)/13), uint8((raw-1)%13+1))
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Hidden reports whether the Card is face down.
func (c Card) Hidden() bool {
	return c.faceDown
}

// Hide turns the Card face down.
func (c *Card) Hide() {
	c.faceDown = true
}

// Reveal turns the Card face up.
func (c *Card) Reveal() {
	c.faceDown = false
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
// Face-down cards render as an opaque placeholder.
func (c Card) String() string {
	if c.faceDown {
		return FaceDown
	}

	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
