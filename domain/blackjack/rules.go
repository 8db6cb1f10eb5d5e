package blackjack

import (
	"fmt"
	"strings"
)

// dealerStand is the total at which the dealer stops drawing: hit below 17,
// stand at 17 or above, no decision point.
const dealerStand = 17

func dealerShouldHit(h Hand) bool {
	return h.Value(true) < dealerStand
}

// parseAction normalizes a raw reply from the input provider. Replies are
// case- and whitespace-insensitive; anything but hit or stand is an error
// so the caller asks again.
func parseAction(raw string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionHit:
		return ActionHit, nil
	case ActionStand:
		return ActionStand, nil
	default:
		return "", fmt.Errorf("unknown action %q", raw)
	}
}

// resolveOutcome settles a round from the fully revealed hands. The case
// order matters: equal totals push even when both hold 21, and a bust
// decides the round before totals are compared.
func resolveOutcome(player, dealer Hand) Outcome {
	playerValue := player.Value(true)
	dealerValue := dealer.Value(true)
	switch {
	case playerValue == dealerValue:
		return OutcomePush
	case player.IsBlackjack():
		return OutcomeBlackjack
	case player.IsBust():
		return OutcomeLoss
	case dealer.IsBust():
		return OutcomeWin
	case dealerValue > playerValue:
		return OutcomeLoss
	default:
		return OutcomeWin
	}
}
