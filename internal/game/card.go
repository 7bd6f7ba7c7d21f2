// internal/game/card.go
package game

import (
	"fmt"
	"math/rand"
)

// CardType identifies a special event card variant.
type CardType string

const (
	CardBonus         CardType = "bonus"          // bonus points on the first fill of the turn
	CardNoDice        CardType = "no_dice"        // turn skipped before any roll
	CardMustBust      CardType = "must_bust"      // banking blocked; turn points kept on bust
	CardDoubleTrouble CardType = "double_trouble" // banking blocked until two fills
)

// Card is the special event drawn at the start of each turn. Bonus is the
// point amount for CardBonus and zero for every other variant, so invalid
// effect combinations cannot be represented.
type Card struct {
	Type  CardType `json:"type"`
	Bonus int      `json:"bonus,omitempty"`
}

func (c Card) String() string {
	if c.Type == CardBonus {
		return fmt.Sprintf("BONUS %d", c.Bonus)
	}
	return string(c.Type)
}

// deckSize is the fixed number of cards in a full deck.
const deckSize = 20

// Deck is the shuffled bag of event cards. Drawing from an empty deck
// rebuilds the fixed multiset and reshuffles from a source re-derived from
// the original seed, so a fixed seed reproduces every draw, including across
// reshuffle boundaries.
type Deck struct {
	seed  int64
	cards []Card
}

// NewDeck builds and shuffles a full deck from the given seed.
func NewDeck(seed int64) *Deck {
	d := &Deck{seed: seed}
	d.reset()
	return d
}

// reset rebuilds the fixed multiset and reshuffles. The shuffle source is
// re-derived from the seed so every reset yields the identical order.
func (d *Deck) reset() {
	cards := make([]Card, 0, deckSize)
	add := func(c Card, n int) {
		for i := 0; i < n; i++ {
			cards = append(cards, c)
		}
	}
	add(Card{Type: CardBonus, Bonus: 300}, 6)
	add(Card{Type: CardBonus, Bonus: 400}, 4)
	add(Card{Type: CardBonus, Bonus: 500}, 2)
	add(Card{Type: CardNoDice}, 3)
	add(Card{Type: CardMustBust}, 3)
	add(Card{Type: CardDoubleTrouble}, 2)

	r := rand.New(rand.NewSource(d.seed))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	d.cards = cards
}

// Draw pops the top card, reshuffling a fresh deck first if empty. Never
// fails.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.reset()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining reports how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
