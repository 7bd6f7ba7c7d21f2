// internal/game/turn.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/fillorbust/internal/models"
)

// TurnPhase represents the lifecycle stage of one player's turn.
type TurnPhase string

const (
	// PhaseSelection means a scoring roll is on the table and the player must
	// choose which eligible dice to keep.
	PhaseSelection TurnPhase = "selection"
	// PhaseDecision means dice have been kept and the player must roll again
	// or bank.
	PhaseDecision TurnPhase = "decision"
	// PhaseBanked is terminal; turn points were credited.
	PhaseBanked TurnPhase = "banked"
	// PhaseBusted is terminal; turn points were discarded unless a MustBust
	// card overrides, or the turn was skipped by NoDice.
	PhaseBusted TurnPhase = "busted"
)

// TurnOutcome is the terminal result of one player's turn.
type TurnOutcome struct {
	PointsGained int  `json:"pointsGained"`
	Busted       bool `json:"busted"`
}

// Turn is the state machine for a single player's turn. It lives from
// BeginTurn until banking or busting and is discarded afterwards. All entry
// points are synchronous; the caller arrives with decisions already resolved.
type Turn struct {
	match  *Match
	player *models.Player

	card          Card
	diceRemaining int
	turnPoints    int
	fills         int
	bonusApplied  bool

	phase    TurnPhase
	roll     []int
	score    ScoreResult
	eligible []int
	outcome  TurnOutcome
}

// BeginTurn draws a card, applies its immediate effect and makes the first
// roll. A NoDice card skips the turn before any roll; the returned turn is
// already terminal in that case.
func (m *Match) BeginTurn(player *models.Player) *Turn {
	t := &Turn{
		match:         m,
		player:        player,
		card:          m.deck.Draw(),
		diceRemaining: MaxDice,
	}
	m.turnCount++
	m.broadcast(TurnEvent{
		Type:       EventCardDrawn,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Card:       &t.card,
	})

	if t.card.Type == CardNoDice {
		t.phase = PhaseBusted
		t.outcome = TurnOutcome{PointsGained: 0, Busted: true}
		m.broadcast(TurnEvent{
			Type:       EventTurnSkipped,
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Card:       &t.card,
		})
		return t
	}

	t.rollDice()
	return t
}

// rollDice rolls the remaining dice and evaluates the result.
func (t *Turn) rollDice() {
	t.applyRoll(t.match.roller.Roll(t.diceRemaining))
}

// applyRoll evaluates a roll and either busts the turn or moves it to
// selection.
func (t *Turn) applyRoll(roll []int) {
	t.roll = roll
	t.score = Score(t.roll)
	t.eligible = ScoringPositions(t.roll)
	t.match.broadcast(TurnEvent{
		Type:       EventDiceRolled,
		PlayerID:   t.player.ID,
		PlayerName: t.player.Name,
		Roll:       append([]int(nil), t.roll...),
		Points:     t.score.Points,
		TurnPoints: t.turnPoints,
	})

	if t.score.Points == 0 {
		t.phase = PhaseBusted
		// MustBust overrides the normal bust-scores-zero rule: the points
		// accumulated so far are still credited.
		if t.card.Type == CardMustBust {
			t.outcome = TurnOutcome{PointsGained: t.turnPoints, Busted: true}
		} else {
			t.outcome = TurnOutcome{PointsGained: 0, Busted: true}
		}
		t.match.broadcast(TurnEvent{
			Type:       EventPlayerBusted,
			PlayerID:   t.player.ID,
			PlayerName: t.player.Name,
			Points:     t.outcome.PointsGained,
		})
		return
	}
	t.phase = PhaseSelection
}

// Phase reports the current lifecycle stage.
func (t *Turn) Phase() TurnPhase { return t.phase }

// Done reports whether the turn has reached a terminal phase.
func (t *Turn) Done() bool {
	return t.phase == PhaseBanked || t.phase == PhaseBusted
}

// Outcome returns the terminal result. Calling it before the turn is done is
// a programming error.
func (t *Turn) Outcome() TurnOutcome {
	if !t.Done() {
		panic("game: Outcome called on unfinished turn")
	}
	return t.outcome
}

// Card returns the special card active for this turn.
func (t *Turn) Card() Card { return t.card }

// Points is the running turn total, bonus included once applied.
func (t *Turn) Points() int { return t.turnPoints }

// Fills is the number of times all dice were used this turn.
func (t *Turn) Fills() int { return t.fills }

// DiceRemaining is how many dice the next roll will use.
func (t *Turn) DiceRemaining() int { return t.diceRemaining }

// CurrentRoll returns a copy of the dice on the table.
func (t *Turn) CurrentRoll() []int {
	return append([]int(nil), t.roll...)
}

// RollScore is the score of the current roll if every scoring die were kept.
func (t *Turn) RollScore() ScoreResult { return t.score }

// Eligible returns a copy of the indices in the current roll that may be
// kept.
func (t *Turn) Eligible() []int {
	return append([]int(nil), t.eligible...)
}

// ChooseDice keeps the dice at the given indices of the current roll. The
// selection must be a non-empty, duplicate-free subset of Eligible that
// scores more than zero; otherwise ErrInvalidSelection is returned and the
// turn is unchanged. Using all remaining dice completes a fill: the dice
// count resets to six and a pending Bonus card pays out exactly once.
func (t *Turn) ChooseDice(indices []int) error {
	if t.phase != PhaseSelection {
		panic(fmt.Sprintf("game: ChooseDice in phase %s", t.phase))
	}
	if len(indices) == 0 {
		return fmt.Errorf("%w: empty selection", ErrInvalidSelection)
	}
	seen := make(map[int]bool, len(indices))
	eligible := make(map[int]bool, len(t.eligible))
	for _, i := range t.eligible {
		eligible[i] = true
	}
	chosen := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(t.roll) {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidSelection, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: index %d repeated", ErrInvalidSelection, i)
		}
		if !eligible[i] {
			return fmt.Errorf("%w: die %d at index %d does not score", ErrInvalidSelection, t.roll[i], i)
		}
		seen[i] = true
		chosen = append(chosen, t.roll[i])
	}
	picked := Score(chosen)
	if picked.Points == 0 {
		return fmt.Errorf("%w: chosen dice score zero", ErrInvalidSelection)
	}

	t.turnPoints += picked.Points
	t.diceRemaining -= len(chosen)
	t.match.broadcast(TurnEvent{
		Type:       EventDiceKept,
		PlayerID:   t.player.ID,
		PlayerName: t.player.Name,
		Roll:       chosen,
		Points:     picked.Points,
		TurnPoints: t.turnPoints,
	})

	if t.diceRemaining == 0 {
		// Hot dice: all six used this turn, roll starts over.
		t.fills++
		t.match.broadcast(TurnEvent{
			Type:       EventTurnFilled,
			PlayerID:   t.player.ID,
			PlayerName: t.player.Name,
			Fills:      t.fills,
			TurnPoints: t.turnPoints,
		})
		if t.card.Type == CardBonus && !t.bonusApplied {
			t.turnPoints += t.card.Bonus
			t.bonusApplied = true
			t.match.broadcast(TurnEvent{
				Type:       EventBonusApplied,
				PlayerID:   t.player.ID,
				PlayerName: t.player.Name,
				Points:     t.card.Bonus,
				TurnPoints: t.turnPoints,
			})
		}
		t.diceRemaining = MaxDice
	}

	t.phase = PhaseDecision
	return nil
}

// KeepAllScoring keeps every eligible die of the current roll.
func (t *Turn) KeepAllScoring() error {
	return t.ChooseDice(t.eligible)
}

// RollAgain rolls the remaining dice after a keep. The turn may bust here.
func (t *Turn) RollAgain() {
	if t.phase != PhaseDecision {
		panic(fmt.Sprintf("game: RollAgain in phase %s", t.phase))
	}
	t.rollDice()
}

// Bank ends the turn voluntarily and returns the credited outcome. Banking
// from the selection phase abandons the un-kept roll but keeps earlier picks.
// A MustBust card forbids banking outright; DoubleTrouble forbids it until
// the second fill. A rejected bank returns ErrIllegalBank and leaves the
// turn unchanged so the caller can re-prompt.
func (t *Turn) Bank() (TurnOutcome, error) {
	if t.phase != PhaseSelection && t.phase != PhaseDecision {
		panic(fmt.Sprintf("game: Bank in phase %s", t.phase))
	}
	switch {
	case t.card.Type == CardMustBust:
		return TurnOutcome{}, fmt.Errorf("%w: MUST BUST is active this turn", ErrIllegalBank)
	case t.card.Type == CardDoubleTrouble && t.fills < 2:
		return TurnOutcome{}, fmt.Errorf("%w: DOUBLE TROUBLE requires two fills, have %d", ErrIllegalBank, t.fills)
	}

	t.phase = PhaseBanked
	t.outcome = TurnOutcome{PointsGained: t.turnPoints, Busted: false}
	t.match.broadcast(TurnEvent{
		Type:       EventPlayerBanked,
		PlayerID:   t.player.ID,
		PlayerName: t.player.Name,
		Points:     t.turnPoints,
		Fills:      t.fills,
	})
	return t.outcome, nil
}
