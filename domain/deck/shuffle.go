package deck

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Shuffle rebuilds the full 52-card pile and permutes it with a
// Fisher-Yates pass whose indexes are drawn uniformly from the keyed stream
// for the current nonce, then advances the nonce. Equal seeds and nonce
// always produce the same permutation, which is what makes a revealed
// session replayable.
func (d *Deck) Shuffle() error {
	stream := d.keyedStream()
	cards := make([]uint8, DeckSize)
	for i := range cards {
		cards[i] = uint8(i + 1)
	}
	for i := DeckSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
	d.cards = cards
	d.seeds.Nonce++
	return nil
}

// keyedStream derives the shuffle keystream for the current nonce: an XOF
// seeded with HMAC-SHA256(server seed, "client:nonce").
func (d *Deck) keyedStream() kyber.XOF {
	mac := hmac.New(sha256.New, []byte(d.seeds.Server))
	message := fmt.Sprintf("%s:%d", d.seeds.Client, d.seeds.Nonce)
	mac.Write([]byte(message))
	return suite.XOF(mac.Sum(nil))
}
