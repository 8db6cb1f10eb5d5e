package blackjack

// Phase identifies where a round currently is in its lifecycle. A table
// sits at Done between rounds.
type Phase string

const (
	Dealing    Phase = "dealing"
	PlayerTurn Phase = "player turn"
	DealerTurn Phase = "dealer turn"
	Resolution Phase = "resolution"
	Done       Phase = "done"
)

// Outcome is the result of a resolved round, seen from the player's side.
// A blackjack is reported distinctly from a generic win.
type Outcome string

const (
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
)

// Action is a normalized player decision during the player turn.
type Action string

const (
	ActionHit   Action = "h"
	ActionStand Action = "s"
)

// Participant is anyone holding cards at the table. Player and dealer share
// the same hand behavior; the name is their only differentiator.
type Participant struct {
	Name string
	Hand Hand
}
