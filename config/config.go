package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"mancala/game"
	"mancala/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Mode string

const (
	HumanVsComputer    Mode = "pvc"
	HumanVsHuman       Mode = "pvp"
	ComputerVsComputer Mode = "cvc"
)

func (m Mode) Valid() bool {
	switch m {
	case HumanVsComputer, HumanVsHuman, ComputerVsComputer:
		return true
	}
	return false
}

type Config struct {
	Mode         Mode
	ComputerSide game.Side // Only used in HumanVsComputer mode
	LogLevel     zerolog.Level
	Games        int // Per experiment
	Seed         uint64
	OutputDir    string
}

func Default() Config {
	return Config{
		Mode:         HumanVsComputer,
		ComputerSide: game.Side2,
		LogLevel:     zerolog.WarnLevel,
		Games:        meta.GAMES,
		Seed:         1,
		OutputDir:    "experiments/results",
	}
}

// Load reads the optional env files (".env" when none is given) and then the
// MANCALA_* environment variables on top of the defaults. Variables already
// set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()

	if v, ok := os.LookupEnv("MANCALA_MODE"); ok {
		cfg.Mode = Mode(v)
		if !cfg.Mode.Valid() {
			return Config{}, fmt.Errorf("MANCALA_MODE: unknown mode %q", v)
		}
	}
	if v, ok := os.LookupEnv("MANCALA_COMPUTER_SIDE"); ok {
		side, err := ParseSide(v)
		if err != nil {
			return Config{}, fmt.Errorf("MANCALA_COMPUTER_SIDE: %w", err)
		}
		cfg.ComputerSide = side
	}
	if v, ok := os.LookupEnv("MANCALA_LOG_LEVEL"); ok {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("MANCALA_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v, ok := os.LookupEnv("MANCALA_GAMES"); ok {
		games, err := strconv.Atoi(v)
		if err != nil || games <= 0 {
			return Config{}, fmt.Errorf("MANCALA_GAMES: expected a positive number, got %q", v)
		}
		cfg.Games = games
	}
	if v, ok := os.LookupEnv("MANCALA_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("MANCALA_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("MANCALA_OUTPUT_DIR"); ok && v != "" {
		cfg.OutputDir = v
	}

	return cfg, nil
}

// ParseSide accepts "1" or "2".
func ParseSide(s string) (game.Side, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !game.Side(n).Valid() {
		return 0, fmt.Errorf("expected side 1 or 2, got %q", s)
	}
	return game.Side(n), nil
}
