package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"ventuno/domain/blackjack"
	"ventuno/domain/deck"
	"ventuno/journal"
)

func main() {
	serverSeed := flag.String("server-seed", "", "hex server seed overriding the random one, for replaying an audited session")
	clientSeed := flag.String("client-seed", "", "hex client seed overriding the random one")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-server-seed hex] [-client-seed hex] [-debug]\n", os.Args[0])
		os.Exit(1)
	}

	level := pterm.LogLevelInfo
	if *debug {
		level = pterm.LogLevelDebug
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lack", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ack", pterm.FgDarkGray.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("Player").Show()

	// Print a blank line for better readability
	pterm.Println()

	seeds, err := newSeeds(*serverSeed, *clientSeed)
	if err != nil {
		logger.Error("failed to prepare the session seeds", "error", err.Error())
		os.Exit(1)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Preparing the table ...")
	cards := deck.NewDeck(seeds)
	log := journal.NewJournal()
	if err := log.Append(journal.Event{Kind: journal.KindCommit, Detail: map[string]string{
		"commitment":  cards.Commitment(),
		"client_seed": seeds.Client,
	}}); err != nil {
		spinner.Fail()
		logger.Error("failed to open the session journal", "error", err.Error())
		os.Exit(1)
	}
	spinner.Success()

	pterm.Info.Printfln("Server seed commitment: %s", cards.Commitment())
	pterm.Info.Printfln("Client seed: %s", seeds.Client)
	logger.Debug("session seeds ready", "nonce", seeds.Nonce)

	table := blackjack.NewTable(name, cards, termInput{}, termRenderer{}, log)

	for {
		logger.Info("Starting a new round", "round", table.Round()+1)
		outcome, err := table.PlayRound()
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}

		pterm.DefaultPanel.WithPanels([][]pterm.Panel{
			{getOutcomePanel(outcome, name), getScorePanel(table.Score())},
		}).Render()

		again, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Play another round? (q to quit)").Show()
		if strings.ToLower(strings.TrimSpace(again)) == "q" {
			break
		}
	}

	finishSession(logger, table, cards, log)
}

// newSeeds builds the session seeds, honoring explicit overrides from the
// command line. Overrides must be hex so a replayed session matches the
// seeds a previous run revealed.
func newSeeds(server, client string) (deck.Seeds, error) {
	seeds, err := deck.NewSeeds()
	if err != nil {
		return deck.Seeds{}, err
	}
	if server != "" {
		if _, err := hex.DecodeString(server); err != nil {
			return deck.Seeds{}, fmt.Errorf("invalid server seed: %w", err)
		}
		seeds.Server = server
	}
	if client != "" {
		if _, err := hex.DecodeString(client); err != nil {
			return deck.Seeds{}, fmt.Errorf("invalid client seed: %w", err)
		}
		seeds.Client = client
	}
	return seeds, nil
}

// finishSession prints the final score, verifies the session journal and,
// if the player wants the session auditable, reveals the seeds.
func finishSession(logger *slog.Logger, table *blackjack.Table, cards *deck.Deck, log *journal.Journal) {
	score := table.Score()
	pterm.Println()
	pterm.Info.Printfln("Final score after %d rounds: %s", score.Rounds(), score.String())

	if err := log.Verify(); err != nil {
		logger.Error("session journal failed verification", "error", err.Error())
		os.Exit(1)
	}
	pterm.Success.Printfln("Session journal verified: %d entries intact", log.Len())

	reveal, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Reveal the server seed for auditing?").WithDefaultValue(true).Show()
	if reveal {
		seeds := cards.Seeds()
		pterm.Info.Printfln("Server seed: %s", seeds.Server)
		pterm.Info.Printfln("Client seed: %s", seeds.Client)
	}
}

// termInput reads the player's raw replies from the interactive terminal.
// The table validates them and asks again when they make no sense.
type termInput struct{}

func (termInput) AskChoice(prompt string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}
