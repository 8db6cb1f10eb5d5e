package blackjack

import "fmt"

// Score tracks round results across a session. Counters only grow, and
// exactly one of them moves per resolved round.
type Score struct {
	Wins   int
	Losses int
	Ties   int
}

// Record applies a resolved outcome to the counters. A blackjack counts as
// a win; an unknown outcome is rejected and changes nothing.
func (s *Score) Record(o Outcome) error {
	switch o {
	case OutcomeBlackjack, OutcomeWin:
		s.Wins++
	case OutcomeLoss:
		s.Losses++
	case OutcomePush:
		s.Ties++
	default:
		return fmt.Errorf("unknown outcome %q", o)
	}
	return nil
}

// Rounds returns how many rounds have been resolved so far.
func (s Score) Rounds() int {
	return s.Wins + s.Losses + s.Ties
}

func (s Score) String() string {
	return fmt.Sprintf("%d won, %d lost, %d push", s.Wins, s.Losses, s.Ties)
}
