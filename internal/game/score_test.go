// internal/game/score_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name string
		roll []int
		want int
	}{
		{"triple aces", []int{1, 1, 1}, 1000},
		{"triple fives", []int{5, 5, 5}, 500},
		{"triple twos", []int{2, 2, 2}, 200},
		{"triple sixes", []int{6, 6, 6}, 600},
		{"four aces counts one single", []int{1, 1, 1, 1}, 1100},
		{"fourth six scores nothing", []int{6, 6, 6, 6}, 600},
		{"bust roll", []int{2, 3, 4, 6}, 0},
		{"ace and five singles", []int{1, 5}, 150},
		{"mixed full roll", []int{2, 2, 2, 1, 5, 3}, 350},
		{"four fives", []int{5, 5, 5, 5}, 550},
		{"two triples", []int{4, 4, 4, 6, 6, 6}, 1000},
		{"single die scoring", []int{5}, 50},
		{"single die bust", []int{4}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.roll).Points)
		})
	}
}

func TestScoreConsumedCounts(t *testing.T) {
	res := Score([]int{1, 5})
	assert.Equal(t, map[int]int{1: 1, 5: 1}, res.Consumed)
	assert.Equal(t, 2, res.ConsumedCount())

	res = Score([]int{6, 6, 6, 6})
	assert.Equal(t, map[int]int{6: 3}, res.Consumed, "fourth six must not be consumed")

	res = Score([]int{1, 1, 1, 1, 5, 2})
	assert.Equal(t, map[int]int{1: 4, 5: 1}, res.Consumed)
	assert.Equal(t, 1150, res.Points)

	res = Score([]int{2, 3, 4, 6})
	assert.Empty(t, res.Consumed, "a bust consumes nothing")
	assert.Zero(t, res.Points)
}

func TestScoreIsPure(t *testing.T) {
	roll := []int{1, 1, 1, 5, 2, 6}
	first := Score(roll)
	second := Score(roll)
	assert.Equal(t, first, second, "same input must yield same output")
	assert.Equal(t, []int{1, 1, 1, 5, 2, 6}, roll, "input must not be mutated")
}

func TestScoringPositions(t *testing.T) {
	tests := []struct {
		name string
		roll []int
		want []int
	}{
		{"singles only", []int{2, 1, 3, 5}, []int{1, 3}},
		{"triple consumes first three", []int{6, 6, 6, 6}, []int{0, 1, 2}},
		{"extra aces stay eligible", []int{1, 1, 1, 1}, []int{0, 1, 2, 3}},
		{"extra fives stay eligible", []int{5, 5, 5, 5, 2}, []int{0, 1, 2, 3}},
		{"triple plus single", []int{2, 2, 2, 5, 3}, []int{0, 1, 2, 3}},
		{"bust roll", []int{2, 3, 4, 6}, nil},
		{"interleaved triple", []int{4, 2, 4, 3, 4, 1}, []int{0, 2, 4, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoringPositions(tc.roll))
		})
	}
}

func TestScoringPositionsMatchConsumed(t *testing.T) {
	// Keeping every eligible position must reproduce the full roll score.
	rolls := [][]int{
		{1, 1, 1, 1, 5, 5},
		{2, 2, 2, 1, 5, 3},
		{5, 5, 5, 5},
		{1, 5},
		{6, 6, 6, 2, 3, 4},
	}
	for _, roll := range rolls {
		full := Score(roll)
		eligible := ScoringPositions(roll)
		require.Len(t, eligible, full.ConsumedCount())

		kept := make([]int, 0, len(eligible))
		for _, i := range eligible {
			kept = append(kept, roll[i])
		}
		assert.Equal(t, full.Points, Score(kept).Points, "roll %v", roll)
	}
}
