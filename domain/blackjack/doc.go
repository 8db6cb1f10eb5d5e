// Package blackjack implements the domain logic for single-player Blackjack
// against an automated dealer, including hand valuation, the round state
// machine, outcome resolution and score tracking.
//
// # Core Types
//
// Table: Runs complete rounds for one player against the house, owning the
// card source, both hands and the session score.
//
// Card: A playing card with suit, rank and a face-up/face-down flag.
//
// Hand: The ordered cards held by one participant, with Blackjack valuation.
//
// Score: Running win/loss/push counters for the session.
//
// # Game Flow
//
// A round progresses through phases: Dealing → PlayerTurn → DealerTurn →
// Resolution → Done. The dealer turn is skipped when the player already
// holds a blackjack or busted. The dealer follows a fixed policy: draw
// below 17, stand at 17 or above.
//
// # Hand Valuation
//
// Aces count as 11 and are downgraded to 1 one at a time while the hand is
// over 21; face cards count 10. Face-down cards are excluded from a hand's
// visible value until they are revealed.
package blackjack
