package main

import (
	"github.com/pterm/pterm"

	"ventuno/domain/blackjack"
)

// termRenderer draws hands as boxed panels on the terminal.
type termRenderer struct{}

func (termRenderer) ShowHand(label string, hand blackjack.Hand) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(handTitle(label, hand)).WithTitleTopLeft().Println(handLine(hand))
}

// handTitle labels a hand box with the participant and the total their
// visible cards show; a hidden hole card stays out of the number.
func handTitle(label string, hand blackjack.Hand) string {
	return pterm.Sprintf("%s (%d showing)", label, hand.Value(false))
}

// handLine joins the cards in dealt order, hidden ones as the placeholder.
func handLine(hand blackjack.Hand) string {
	line := ""
	for i, c := range hand.Cards() {
		if i > 0 {
			line += " - "
		}
		line += c.String()
	}
	return line
}

func getOutcomePanel(outcome blackjack.Outcome, name string) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var result string
	switch outcome {
	case blackjack.OutcomeBlackjack:
		result = pterm.LightGreen("Blackjack! " + name + " wins")
	case blackjack.OutcomeWin:
		result = pterm.LightGreen(name + " wins")
	case blackjack.OutcomeLoss:
		result = pterm.LightRed("Dealer wins")
	case blackjack.OutcomePush:
		result = pterm.LightYellow("Push, nobody wins")
	default:
		result = string(outcome)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Sprint(result)}
}

func getScorePanel(score blackjack.Score) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Wins: %d", score.Wins) +
		pterm.Sprintfln("Losses: %d", score.Losses) +
		pterm.Sprintf("Pushes: %d", score.Ties)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|SCORE|")).WithTitleTopCenter().Sprint(info)}
}
