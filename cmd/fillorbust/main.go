// cmd/fillorbust/main.go
package main

import (
	"flag"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fillorbust/internal/config"
	"github.com/jason-s-yu/fillorbust/internal/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML rules file")
		players    = flag.Int("players", 0, "number of players")
		aiCount    = flag.Int("ai-count", 0, "number of automated players (last N); 0 means all")
		pointsWin  = flag.Int("points-to-win", 0, "cumulative score required to win")
		threshold  = flag.Int("ai-threshold-points", 0, "automated players bank after this many turn points")
		seed       = flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
		simulate   = flag.Int("simulate", 0, "number of matches to simulate")
		verbose    = flag.Bool("v", false, "debug logging with per-roll detail")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if *verbose || os.Getenv("FOB_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	// Flags passed explicitly beat the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "ai-count":
			cfg.AICount = *aiCount
		case "points-to-win":
			cfg.PointsToWin = *pointsWin
		case "ai-threshold-points":
			cfg.AIThresholdPoints = *threshold
		case "seed":
			cfg.Seed = *seed
		case "simulate":
			cfg.Simulations = *simulate
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.WithFields(logrus.Fields{
		"players":     cfg.Players,
		"pointsToWin": cfg.PointsToWin,
		"threshold":   cfg.AIThresholdPoints,
		"seed":        cfg.Seed,
		"matches":     cfg.Simulations,
	}).Info("starting simulation")

	stats := sim.RunBatch(cfg, logger)
	logger.WithFields(logrus.Fields{
		"matches":  stats.Matches,
		"wins":     stats.Wins,
		"avgTurns": stats.AvgTurns,
	}).Info("simulation complete")
}
