// internal/game/score.go
package game

import "sort"

// ScoreResult reports the points a roll is worth and which dice produced
// them, as a face -> count map. Points is 0 exactly when Consumed is empty.
type ScoreResult struct {
	Points   int         `json:"points"`
	Consumed map[int]int `json:"consumed"`
}

// ConsumedCount is the total number of dice that contributed points.
func (r ScoreResult) ConsumedCount() int {
	n := 0
	for _, c := range r.Consumed {
		n += c
	}
	return n
}

// Score evaluates a roll. Per face: three of a kind consumes exactly three
// dice (1000 for aces, face*100 otherwise); leftover 1s score 100 each and
// leftover 5s score 50 each. Faces 2, 3, 4 and 6 beyond a triple never score.
// Pure function; the roll is not mutated.
func Score(roll []int) ScoreResult {
	var counts [7]int
	for _, v := range roll {
		counts[v]++
	}

	res := ScoreResult{Consumed: map[int]int{}}
	for face := 1; face <= 6; face++ {
		if counts[face] >= 3 {
			base := face * 100
			if face == 1 {
				base = 1000
			}
			res.Points += base
			res.Consumed[face] += 3
			counts[face] -= 3
		}
	}
	if counts[1] > 0 {
		res.Points += counts[1] * 100
		res.Consumed[1] += counts[1]
	}
	if counts[5] > 0 {
		res.Points += counts[5] * 50
		res.Consumed[5] += counts[5]
	}
	return res
}

// ScoringPositions returns the indices in roll that are eligible for
// selection, in ascending order: the first three occurrences of any face with
// count >= 3, any further 1s or 5s beyond that triple, and every 1 or 5 when
// the face has fewer than three occurrences. Supports partial keeps, where a
// player takes only some of the scoring dice.
func ScoringPositions(roll []int) []int {
	byFace := map[int][]int{}
	for i, v := range roll {
		byFace[v] = append(byFace[v], i)
	}

	var eligible []int
	for face, pos := range byFace {
		switch {
		case len(pos) >= 3:
			eligible = append(eligible, pos[:3]...)
			if (face == 1 || face == 5) && len(pos) > 3 {
				eligible = append(eligible, pos[3:]...)
			}
		case face == 1 || face == 5:
			eligible = append(eligible, pos...)
		}
	}
	sort.Ints(eligible)
	return eligible
}
