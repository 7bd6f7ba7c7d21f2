// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables for a simulation run. Values layer as
// defaults <- YAML file <- environment; command-line flags override last in
// the CLI.
type Config struct {
	Players           int   `yaml:"players"`
	AICount           int   `yaml:"aiCount"` // last N players are automated; 0 means all
	PointsToWin       int   `yaml:"pointsToWin"`
	AIThresholdPoints int   `yaml:"aiThresholdPoints"`
	Seed              int64 `yaml:"seed"` // 0 means derive from the clock
	Simulations       int   `yaml:"simulations"`
}

// Default returns the standard configuration: two players, first to 2000,
// automated banking at 500.
func Default() Config {
	return Config{
		Players:           2,
		PointsToWin:       2000,
		AIThresholdPoints: 500,
		Simulations:       1,
	}
}

// Load reads an optional YAML file over the defaults and then applies
// environment overrides. A missing file is not an error; an unreadable or
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("config: players must be at least 1, got %d", c.Players)
	}
	if c.AICount < 0 || c.AICount > c.Players {
		return fmt.Errorf("config: aiCount %d outside [0,%d]", c.AICount, c.Players)
	}
	if c.PointsToWin < 1 {
		return fmt.Errorf("config: pointsToWin must be positive, got %d", c.PointsToWin)
	}
	if c.AIThresholdPoints < 1 {
		return fmt.Errorf("config: aiThresholdPoints must be positive, got %d", c.AIThresholdPoints)
	}
	if c.Simulations < 1 {
		return fmt.Errorf("config: simulations must be at least 1, got %d", c.Simulations)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setInt := func(field *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*field = n
			}
		}
	}
	setInt(&cfg.Players, "FOB_PLAYERS")
	setInt(&cfg.AICount, "FOB_AI_COUNT")
	setInt(&cfg.PointsToWin, "FOB_POINTS_TO_WIN")
	setInt(&cfg.AIThresholdPoints, "FOB_AI_THRESHOLD_POINTS")
	setInt(&cfg.Simulations, "FOB_SIMULATIONS")
	if v := os.Getenv("FOB_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
}
