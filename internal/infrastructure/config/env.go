package config

import (
	"fmt"
	"strconv"
)

// Environment variables recognised by ApplyEnv
const (
	EnvInitialHealth = "TD_INITIAL_HEALTH"
	EnvInitialGold   = "TD_INITIAL_GOLD"
	EnvVictoryWave   = "TD_VICTORY_WAVE"
	EnvDedupeCorners = "TD_DEDUPE_CORNERS"
	EnvConfigDir     = "TD_CONFIG_DIR"
)

// ApplyEnv overrides selected settings from the environment.
// getenv is usually os.Getenv; unset or empty variables are ignored.
func ApplyEnv(cfg *GameConfig, getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvInitialHealth, &cfg.Game.Rules.InitialHealth},
		{EnvInitialGold, &cfg.Game.Rules.InitialGold},
		{EnvVictoryWave, &cfg.Game.Rules.VictoryWave},
	}
	for _, o := range ints {
		raw := getenv(o.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", o.key, raw, err)
		}
		*o.dst = v
	}

	if raw := getenv(EnvDedupeCorners); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvDedupeCorners, raw, err)
		}
		cfg.Map.DedupeCorners = v
	}

	return cfg.Validate()
}
