// internal/sim/sim.go

// Package sim runs batches of fully automated matches and tallies the
// results. Per-match seeds are drawn from a single master source, so one
// seed reproduces an entire batch bit-for-bit.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fillorbust/internal/config"
	"github.com/jason-s-yu/fillorbust/internal/game"
	"github.com/jason-s-yu/fillorbust/internal/models"
)

// Stats aggregates a batch of simulated matches.
type Stats struct {
	Matches  int            `json:"matches"`
	Wins     map[string]int `json:"wins"` // player name -> matches won
	AvgTurns float64        `json:"avgTurns"`
}

// MakePlayers builds n players named P1..Pn. The last aiCount of them carry
// the automated flag; aiCount 0 flags everyone, since simulation has no one
// to prompt.
func MakePlayers(n, aiCount int) []*models.Player {
	if aiCount <= 0 || aiCount > n {
		aiCount = n
	}
	players := make([]*models.Player, n)
	for i := range players {
		players[i] = models.NewPlayer(fmt.Sprintf("P%d", i+1), i >= n-aiCount)
	}
	return players
}

// RunBatch plays cfg.Simulations automated matches and tallies wins per
// player name. Every match gets fresh players so cumulative scores never
// leak across matches.
func RunBatch(cfg config.Config, logger *logrus.Logger) Stats {
	if logger == nil {
		logger = logrus.New()
	}
	master := rand.New(rand.NewSource(cfg.Seed))
	rules := game.Rules{PointsToWin: cfg.PointsToWin, AIBankThreshold: cfg.AIThresholdPoints}

	stats := Stats{Wins: map[string]int{}}
	totalTurns := 0
	for i := 0; i < cfg.Simulations; i++ {
		m := game.NewMatch(MakePlayers(cfg.Players, cfg.AICount), rules, master.Int63())
		m.Logger = logger
		if logger.IsLevelEnabled(logrus.DebugLevel) {
			m.BroadcastFn = func(ev game.TurnEvent) {
				logger.WithFields(logrus.Fields{
					"player":     ev.PlayerName,
					"roll":       ev.Roll,
					"points":     ev.Points,
					"turnPoints": ev.TurnPoints,
				}).Debug(string(ev.Type))
			}
		}
		winner := m.Run()
		stats.Wins[winner.Name]++
		totalTurns += m.TurnsPlayed()
	}
	stats.Matches = cfg.Simulations
	if stats.Matches > 0 {
		stats.AvgTurns = float64(totalTurns) / float64(stats.Matches)
	}
	return stats
}
