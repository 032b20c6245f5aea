package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	HumanMark   string `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"X"`
	FirstPlayer string `yaml:"first-player" env:"TTT_FIRST_PLAYER" env-default:"human"`
	Search      Search `yaml:"search"`
}

type Search struct {
	Workers int `yaml:"workers" env:"TTT_SEARCH_WORKERS" env-default:"1"`
}

// MustLoad - load configuration from the yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return conf
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	if _, err := that.Seating(); err != nil {
		return err
	}

	if that.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers must be at least 1, got %d", ErrInvalidConfig, that.Search.Workers)
	}

	return nil
}

// Seating converts the player settings into marks and turn order.
func (that *Config) Seating() (entity.Seating, error) {
	mark, err := entity.ParseMark(that.HumanMark)
	if err != nil {
		return entity.Seating{}, fmt.Errorf("%w: human-mark: %w", ErrInvalidConfig, err)
	}

	first, err := entity.ParseRole(that.FirstPlayer)
	if err != nil {
		return entity.Seating{}, fmt.Errorf("%w: first-player: %w", ErrInvalidConfig, err)
	}

	return entity.Seating{HumanMark: mark, First: first}, nil
}
