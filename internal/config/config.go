package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Glyphs   Glyphs `yaml:"glyphs"`
}

type Glyphs struct {
	X     string `yaml:"x" env:"GLYPH_X" env-default:"X"`
	O     string `yaml:"o" env:"GLYPH_O" env-default:"O"`
	Empty string `yaml:"empty" env:"GLYPH_EMPTY" env-default:" "`
}

// MustLoad - load configuration from the yml file at path, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	return config, nil
}

// SlogLevel maps log-level onto slog levels (debug, info, warn, error). Unknown names fall back to info.
func (that *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (that *Glyphs) ToTicTacToe() tictactoe.Glyphs {
	return tictactoe.Glyphs{
		X:     that.X,
		O:     that.O,
		Empty: that.Empty,
	}
}
