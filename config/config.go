// Package config reads the game settings from the environment, honouring a
// .env file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/joker-poker/game"
)

type Config struct {
	DatabasePath string
	SaveSlot     string

	BaseBlind       int
	BlindMultiplier int
	Plays           int
	Discards        int
	Antes           int
	Seed            string

	LogLevel slog.Level
}

// Run returns the run rules described by the configuration.
func (c Config) Run() game.RunConfig {
	var seed []byte
	if c.Seed != "" {
		seed = []byte(c.Seed)
	}
	return game.RunConfig{
		BaseBlind:       c.BaseBlind,
		BlindMultiplier: c.BlindMultiplier,
		Antes:           c.Antes,
		Plays:           c.Plays,
		Discards:        c.Discards,
		Seed:            seed,
	}
}

// LoadFromEnv loads .env if present, then reads every JOKER_* variable.
// Invalid values print a warning and keep the default.
func LoadFromEnv() (Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	cfg := Config{
		DatabasePath:    strings.TrimSpace(os.Getenv("JOKER_DB_PATH")),
		SaveSlot:        strings.TrimSpace(os.Getenv("JOKER_SAVE_SLOT")),
		BaseBlind:       intFromEnv("JOKER_BASE_BLIND", 300, 0),
		BlindMultiplier: intFromEnv("JOKER_BLIND_MULTIPLIER", 2, 1),
		Plays:           intFromEnv("JOKER_PLAYS", 4, 1),
		Discards:        intFromEnv("JOKER_DISCARDS", 3, 0),
		Antes:           intFromEnv("JOKER_ANTES", 8, 1),
		Seed:            os.Getenv("JOKER_SEED"),
		LogLevel:        slog.LevelInfo,
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "joker-poker.db"
	}
	if cfg.SaveSlot == "" {
		cfg.SaveSlot = "default"
	}

	if v := strings.TrimSpace(os.Getenv("JOKER_LOG_LEVEL")); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: invalid JOKER_LOG_LEVEL=%q, using default %s\n", v, slog.LevelInfo)
			cfg.LogLevel = slog.LevelInfo
		}
	}

	if cfg.BaseBlind > 0 && cfg.BlindMultiplier > 1 {
		// the last ante's blind must fit in an int
		limit := cfg.BaseBlind
		for i := 1; i < cfg.Antes; i++ {
			if limit > (1<<62)/cfg.BlindMultiplier {
				return Config{}, fmt.Errorf("blind of ante %d overflows: JOKER_BASE_BLIND=%d, JOKER_BLIND_MULTIPLIER=%d", i+1, cfg.BaseBlind, cfg.BlindMultiplier)
			}
			limit *= cfg.BlindMultiplier
		}
	}
	return cfg, nil
}

func intFromEnv(key string, def, min int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		fmt.Fprintf(os.Stderr, "WARNING: invalid %s=%q, using default %d\n", key, v, def)
		return def
	}
	return n
}
