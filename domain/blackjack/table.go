package blackjack

import (
	"fmt"
	"strconv"

	"ventuno/journal"
)

// CardSource deals raw card numbers in 1..52. Shuffle starts a fresh
// 52-card permutation; Draw pops the top card and fails once the source is
// exhausted.
type CardSource interface {
	Shuffle() error
	Draw() (uint8, error)
}

// InputProvider supplies the player's raw replies. Calls block until the
// player answers; the table normalizes and validates what comes back and
// asks again on anything it does not recognize.
type InputProvider interface {
	AskChoice(prompt string) (string, error)
}

// Renderer displays one labeled hand. Face-down cards must stay opaque to
// the player.
type Renderer interface {
	ShowHand(label string, hand Hand)
}

// Table runs rounds of Blackjack for one player against the house dealer.
// It owns the card source, both hands and the running score for the whole
// session; input and rendering are delegated to the shell.
type Table struct {
	deck   CardSource
	input  InputProvider
	render Renderer
	log    *journal.Journal
	player Participant
	dealer Participant
	score  Score
	phase  Phase
	round  int
}

// NewTable seats a named player against the dealer. The journal may be nil
// when no record of play is wanted.
func NewTable(name string, deck CardSource, input InputProvider, render Renderer, log *journal.Journal) *Table {
	return &Table{
		deck:   deck,
		input:  input,
		render: render,
		log:    log,
		player: Participant{Name: name},
		dealer: Participant{Name: "Dealer"},
		phase:  Done,
	}
}

// Score returns the session counters.
func (t *Table) Score() Score {
	return t.score
}

// Phase returns where the current round is in its lifecycle.
func (t *Table) Phase() Phase {
	return t.phase
}

// Round returns the number of the round in play, starting at 1.
func (t *Table) Round() int {
	return t.round
}

// PlayRound runs one complete round: reshuffle and deal, the player's
// hit/stand decisions, the dealer's fixed drawing policy, resolution and
// scoring. Both hands are discarded before it returns, aborted rounds
// included, so the table is always clean for the next round. An error
// aborts the round; it means the card source or the journal failed, never
// the player.
func (t *Table) PlayRound() (Outcome, error) {
	t.round++
	defer func() {
		t.player.Hand.Discard()
		t.dealer.Hand.Discard()
		t.phase = Done
	}()
	if err := t.deal(); err != nil {
		return "", err
	}
	if err := t.playerTurn(); err != nil {
		return "", err
	}
	if !t.player.Hand.IsBlackjack() && !t.player.Hand.IsBust() {
		if err := t.dealerTurn(); err != nil {
			return "", err
		}
	}
	return t.resolve()
}

// deal reshuffles a fresh deck and deals the opening hands: two face-up
// cards to the player, then the dealer's hole card face down and one card
// face up. Exactly four cards leave the deck.
func (t *Table) deal() error {
	t.phase = Dealing
	if err := t.deck.Shuffle(); err != nil {
		return fmt.Errorf("shuffling: %w", err)
	}
	if err := t.record(journal.KindShuffle, nil); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if _, err := t.dealCard(&t.player, false); err != nil {
			return err
		}
	}
	if _, err := t.dealCard(&t.dealer, true); err != nil {
		return err
	}
	if _, err := t.dealCard(&t.dealer, false); err != nil {
		return err
	}
	if err := t.record(journal.KindDeal, map[string]string{
		"player": strconv.Itoa(t.player.Hand.Value(false)),
		"dealer": strconv.Itoa(t.dealer.Hand.Value(false)),
	}); err != nil {
		return err
	}
	t.showHands()
	return nil
}

// dealCard moves the top card of the deck into a participant's hand and
// returns its raw number.
func (t *Table) dealCard(p *Participant, faceDown bool) (uint8, error) {
	raw, err := t.deck.Draw()
	if err != nil {
		return 0, fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	card, err := ConvertCard(int(raw))
	if err != nil {
		return 0, fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	if faceDown {
		card.Hide()
	}
	p.Hand.TakeCard(card)
	return raw, nil
}

// playerTurn asks for hit or stand until the player stands, busts or holds
// a blackjack. A dealt blackjack ends the turn before any prompt, and any
// 21 or bust ends it regardless of the next intended choice. Unrecognized
// replies are asked again, never treated as errors.
func (t *Table) playerTurn() error {
	t.phase = PlayerTurn
	for !t.player.Hand.IsBlackjack() && !t.player.Hand.IsBust() {
		raw, err := t.input.AskChoice("Hit or stand? [h/s]")
		if err != nil {
			return fmt.Errorf("reading choice: %w", err)
		}
		action, err := parseAction(raw)
		if err != nil {
			continue
		}
		if action == ActionStand {
			return t.record(journal.KindStand, map[string]string{
				"participant": t.player.Name,
				"total":       strconv.Itoa(t.player.Hand.Value(true)),
			})
		}
		if err := t.hit(&t.player); err != nil {
			return err
		}
		t.showHands()
	}
	return nil
}

// dealerTurn reveals the hole card and applies the house policy: draw while
// under 17, stand at 17 or above.
func (t *Table) dealerTurn() error {
	t.phase = DealerTurn
	t.dealer.Hand.RevealAll()
	if err := t.record(journal.KindReveal, map[string]string{
		"total": strconv.Itoa(t.dealer.Hand.Value(true)),
	}); err != nil {
		return err
	}
	t.showHands()
	for dealerShouldHit(t.dealer.Hand) {
		if err := t.hit(&t.dealer); err != nil {
			return err
		}
		t.showHands()
	}
	return nil
}

// hit draws one face-up card for a participant and records it.
func (t *Table) hit(p *Participant) error {
	raw, err := t.dealCard(p, false)
	if err != nil {
		return err
	}
	return t.record(journal.KindHit, map[string]string{
		"participant": p.Name,
		"card":        strconv.Itoa(int(raw)),
		"total":       strconv.Itoa(p.Hand.Value(true)),
	})
}

// resolve reveals whatever is still hidden, renders the final state and
// settles the round, moving exactly one score counter.
func (t *Table) resolve() (Outcome, error) {
	t.phase = Resolution
	if t.dealer.Hand.hasHidden() {
		t.dealer.Hand.RevealAll()
		if err := t.record(journal.KindReveal, map[string]string{
			"total": strconv.Itoa(t.dealer.Hand.Value(true)),
		}); err != nil {
			return "", err
		}
		t.showHands()
	}
	outcome := resolveOutcome(t.player.Hand, t.dealer.Hand)
	if err := t.score.Record(outcome); err != nil {
		return "", err
	}
	if err := t.record(journal.KindOutcome, map[string]string{
		"result": string(outcome),
		"player": strconv.Itoa(t.player.Hand.Value(true)),
		"dealer": strconv.Itoa(t.dealer.Hand.Value(true)),
	}); err != nil {
		return "", err
	}
	return outcome, nil
}

// showHands renders the dealer's hand above the player's, the way the table
// faces the player.
func (t *Table) showHands() {
	t.render.ShowHand(t.dealer.Name, t.dealer.Hand)
	t.render.ShowHand(t.player.Name, t.player.Hand)
}

// record appends a round event to the journal when one is attached.
func (t *Table) record(kind journal.EventKind, detail map[string]string) error {
	if t.log == nil {
		return nil
	}
	if err := t.log.Append(journal.Event{Round: t.round, Kind: kind, Detail: detail}); err != nil {
		return fmt.Errorf("recording %s: %w", kind, err)
	}
	return nil
}
