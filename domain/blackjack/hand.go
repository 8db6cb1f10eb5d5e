package blackjack

// Hand is the ordered sequence of cards held by one participant during a
// round. The zero value is an empty hand.
type Hand struct {
	cards []Card
}

// TakeCard appends a card to the hand.
func (h *Hand) TakeCard(c Card) {
	h.cards = append(h.cards, c)
}

// Discard empties the hand at the end of a round.
func (h *Hand) Discard() {
	h.cards = nil
}

// Cards returns the hand in the order the cards were taken.
func (h Hand) Cards() []Card {
	return h.cards
}

// Size returns the number of cards in the hand, hidden ones included.
func (h Hand) Size() int {
	return len(h.cards)
}

// RevealAll turns every card in the hand face up.
func (h *Hand) RevealAll() {
	for i := range h.cards {
		h.cards[i].Reveal()
	}
}

// hasHidden reports whether any card is still face down.
func (h Hand) hasHidden() bool {
	for _, c := range h.cards {
		if c.faceDown {
			return true
		}
	}
	return false
}

// cardValue scores a single card: an ace is 11 before any downgrade, face
// cards are 10, the rest count their rank.
func cardValue(c Card) int {
	switch c.rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		return int(c.rank)
	}
}

// Value computes the best Blackjack total of the hand. Face-down cards are
// skipped unless revealAll is true. Aces start at 11 and are downgraded to 1
// one at a time while the total is over 21; the result can still exceed 21
// once no downgradable ace remains.
func (h Hand) Value(revealAll bool) int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		if c.faceDown && !revealAll {
			continue
		}
		if c.rank == Ace {
			aces++
		}
		total += cardValue(c)
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBlackjack reports whether the fully revealed hand totals exactly 21.
func (h Hand) IsBlackjack() bool {
	return h.Value(true) == 21
}

// IsBust reports whether the fully revealed hand exceeds 21.
func (h Hand) IsBust() bool {
	return h.Value(true) > 21
}
