// internal/game/match.go
package game

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fillorbust/internal/models"
)

// Rules configures a match.
type Rules struct {
	PointsToWin     int `json:"pointsToWin"`     // cumulative score that ends the match
	AIBankThreshold int `json:"aiBankThreshold"` // automated players bank at this turn total
}

// DefaultRules returns the standard game configuration.
func DefaultRules() Rules {
	return Rules{PointsToWin: 2000, AIBankThreshold: 500}
}

// Match holds the entire state for one match: the players, the card deck and
// the single seeded source that feeds every dice roll. Turns resolve fully
// sequentially, so a fixed seed reproduces an entire match.
type Match struct {
	ID      uuid.UUID
	Players []*models.Player
	Rules   Rules

	roller *Roller
	deck   *Deck

	// Logger receives match-level progress. Defaults to a fresh logrus
	// logger; replace before play to integrate with the caller's logging.
	Logger *logrus.Logger

	// BroadcastFn is used to send turn events to the I/O collaborator. If
	// nil, no broadcast is done.
	BroadcastFn BroadcastFn

	Winner *models.Player

	policies  map[uuid.UUID]TurnPolicy
	turnCount int
}

// NewMatch builds a match over the given players. The seed feeds both the
// dice roller and the deck shuffle; the deck re-derives its source from the
// same seed on every reshuffle so draws stay reproducible.
func NewMatch(players []*models.Player, rules Rules, seed int64) *Match {
	id, _ := uuid.NewRandom()
	return &Match{
		ID:       id,
		Players:  players,
		Rules:    rules,
		roller:   NewRoller(rand.New(rand.NewSource(seed))),
		deck:     NewDeck(seed),
		Logger:   logrus.New(),
		policies: make(map[uuid.UUID]TurnPolicy),
	}
}

// SetPolicy overrides the turn policy for one player. Players without an
// override use ThresholdPolicy with the match's AI bank threshold.
func (m *Match) SetPolicy(playerID uuid.UUID, policy TurnPolicy) {
	m.policies[playerID] = policy
}

func (m *Match) policyFor(p *models.Player) TurnPolicy {
	if policy, ok := m.policies[p.ID]; ok {
		return policy
	}
	return ThresholdPolicy{Threshold: m.Rules.AIBankThreshold}
}

func (m *Match) broadcast(ev TurnEvent) {
	if m.BroadcastFn != nil {
		m.BroadcastFn(ev)
	}
}

// TurnsPlayed is the number of turns started so far, skipped turns included.
func (m *Match) TurnsPlayed() int { return m.turnCount }

// PlayTurn resolves one complete turn for the player using their policy.
// It does not touch the cumulative score; see ApplyOutcome.
func (m *Match) PlayTurn(p *models.Player) TurnOutcome {
	return m.PlayTurnWith(p, m.policyFor(p))
}

// PlayTurnWith drives the turn state machine to completion with the given
// policy. A policy that returns an invalid selection is logged and demoted to
// keeping all scoring dice, so play always makes progress. A bank rejected by
// a card gate keeps rolling, which is the only legal continuation.
func (m *Match) PlayTurnWith(p *models.Player, policy TurnPolicy) TurnOutcome {
	t := m.BeginTurn(p)
	for !t.Done() {
		if err := t.ChooseDice(policy.ChooseDice(t)); err != nil {
			m.Logger.WithFields(logrus.Fields{
				"player": p.Name,
				"error":  err,
			}).Warn("policy returned an invalid selection, keeping all scoring dice")
			if err := t.KeepAllScoring(); err != nil {
				// Unreachable: a selection phase always has eligible dice.
				panic(err)
			}
		}
		if policy.ContinueOrBank(t) == DecisionBank {
			if _, err := t.Bank(); err == nil {
				break
			} else if !errors.Is(err, ErrIllegalBank) {
				panic(err)
			}
			m.Logger.WithFields(logrus.Fields{
				"player": p.Name,
				"card":   t.Card().String(),
				"fills":  t.Fills(),
			}).Debug("bank rejected by card gate, rolling on")
		}
		t.RollAgain()
	}
	return t.Outcome()
}

// ApplyOutcome credits a finished turn to the player's cumulative score and
// reports whether that ended the match. First across the threshold wins
// immediately; there is no final round.
func (m *Match) ApplyOutcome(p *models.Player, out TurnOutcome) bool {
	p.Points += out.PointsGained
	m.Logger.WithFields(logrus.Fields{
		"player": p.Name,
		"gained": out.PointsGained,
		"busted": out.Busted,
		"total":  p.Points,
	}).Debug("turn resolved")

	if p.Points >= m.Rules.PointsToWin {
		m.Winner = p
		m.broadcast(TurnEvent{
			Type:       EventMatchEnd,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Total:      p.Points,
		})
		return true
	}
	return false
}

// Run round-robins the players, resolving one policy-driven turn per player
// per round, until someone reaches the win threshold. Returns the winner.
func (m *Match) Run() *models.Player {
	for {
		for _, p := range m.Players {
			out := m.PlayTurn(p)
			if m.ApplyOutcome(p, out) {
				m.Logger.WithFields(logrus.Fields{
					"winner": p.Name,
					"points": p.Points,
					"turns":  m.turnCount,
				}).Info("match over")
				return p
			}
		}
	}
}
