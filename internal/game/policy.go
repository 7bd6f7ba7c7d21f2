// internal/game/policy.go
package game

// Decision is a continue-or-bank choice at the end of a pick.
type Decision int

const (
	DecisionRoll Decision = iota
	DecisionBank
)

// TurnPolicy supplies the two decision points of a turn so the state machine
// stays policy-agnostic. Interactive collaborators skip policies entirely and
// drive the Turn surface themselves with already-resolved input.
type TurnPolicy interface {
	// ChooseDice picks which eligible indices of the current roll to keep.
	ChooseDice(t *Turn) []int
	// ContinueOrBank decides whether to roll the remaining dice or bank.
	ContinueOrBank(t *Turn) Decision
}

// ThresholdPolicy keeps every scoring die from each roll and banks once the
// turn total reaches Threshold. This is the only automated strategy the game
// ships.
type ThresholdPolicy struct {
	Threshold int
}

func (p ThresholdPolicy) ChooseDice(t *Turn) []int {
	return t.Eligible()
}

func (p ThresholdPolicy) ContinueOrBank(t *Turn) Decision {
	if t.Points() >= p.Threshold {
		return DecisionBank
	}
	return DecisionRoll
}
