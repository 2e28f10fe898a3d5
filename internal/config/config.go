package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/robalobadob/devwordle/internal/daily"
	"github.com/robalobadob/devwordle/internal/store"
)

// EnvPrefix namespaces environment overrides: DEVWORDLE_STORAGE_DRIVER etc.
const EnvPrefix = "DEVWORDLE"

// Config holds all configuration for the game
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Words   WordsConfig   `mapstructure:"words"`
	Daily   DailyConfig   `mapstructure:"daily"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// GameConfig holds presentation-independent game settings
type GameConfig struct {
	Title string `mapstructure:"title"`
	Mode  string `mapstructure:"mode"` // daily | practice
}

// WordsConfig points at replacement word lists; empty means embedded.
type WordsConfig struct {
	AnswersFile string `mapstructure:"answers_file"`
	AllowedFile string `mapstructure:"allowed_file"`
}

// DailyConfig holds the calendar policy
type DailyConfig struct {
	Epoch    string `mapstructure:"epoch"`
	Timezone string `mapstructure:"timezone"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

// Load reads configuration from defaults, an optional config file and
// environment variables (a .env file in the working directory is loaded
// first). configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	_ = godotenv.Load()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("game.title", "Dev Wordle")
	v.SetDefault("game.mode", "daily")

	v.SetDefault("words.answers_file", "")
	v.SetDefault("words.allowed_file", "")

	v.SetDefault("daily.epoch", daily.DefaultEpoch)
	v.SetDefault("daily.timezone", daily.DefaultTimezone)

	v.SetDefault("storage.driver", store.DriverFile)
	v.SetDefault("storage.path", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

func (c *Config) normalize() error {
	c.Game.Mode = strings.ToLower(strings.TrimSpace(c.Game.Mode))
	switch c.Game.Mode {
	case "daily", "practice":
	default:
		return fmt.Errorf("game.mode must be daily or practice, got %q", c.Game.Mode)
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case store.DriverMemory, store.DriverFile, store.DriverSQLite:
	default:
		return fmt.Errorf("storage.driver must be memory, file or sqlite, got %q", c.Storage.Driver)
	}
	if c.Storage.Path == "" && c.Storage.Driver != store.DriverMemory {
		p, err := DefaultStatePath(c.Storage.Driver)
		if err != nil {
			return err
		}
		c.Storage.Path = p
	}
	return nil
}

// DefaultStatePath is ~/.dev-wordle/state.json (file) or state.db (sqlite).
func DefaultStatePath(driver string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	name := "state.json"
	if driver == store.DriverSQLite {
		name = "state.db"
	}
	return filepath.Join(home, ".dev-wordle", name), nil
}

// Calendar builds the calendar policy from the daily section.
func (c *Config) Calendar() (*daily.Calendar, error) {
	return daily.NewCalendar(c.Daily.Epoch, c.Daily.Timezone)
}

// Logger builds the process logger. Output goes to w (stderr in the CLI).
func (c LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), errors.New("log.format must be console or json")
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
