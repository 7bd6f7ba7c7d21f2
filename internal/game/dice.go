// internal/game/dice.go
package game

import (
	"fmt"
	"math/rand"
)

// MaxDice is the number of dice a turn starts with and resets to after a fill.
const MaxDice = 6

// Roller produces dice values from the match's single seeded source, so a
// fixed seed reproduces every roll of a match.
type Roller struct {
	rng *rand.Rand
}

// NewRoller wraps an already-seeded source.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll returns n independent uniform values in [1,6]. A count outside
// [1, MaxDice] is a caller contract violation and panics.
func (r *Roller) Roll(n int) []int {
	if n < 1 || n > MaxDice {
		panic(fmt.Sprintf("game: roll count %d outside [1,%d]", n, MaxDice))
	}
	out := make([]int, n)
	for i := range out {
		out[i] = r.rng.Intn(6) + 1
	}
	return out
}
