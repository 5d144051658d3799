package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gamma/internal/game"
)

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

type Game struct {
	// MaxCells caps width*height of a new board.
	MaxCells uint64 `mapstructure:"max_cells"`
}

type UI struct {
	Highlight string `mapstructure:"highlight"` // escape sequence wrapped around the cursor cell
	Reset     string `mapstructure:"reset"`
}

type Config struct {
	Log  Log  `mapstructure:"log"`
	Game Game `mapstructure:"game"`
	UI   UI   `mapstructure:"ui"`
}

const EnvPrefix = "GAMMA"

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("game.max_cells", game.DefaultMaxCells)
	v.SetDefault("ui.highlight", "\x1b[44m")
	v.SetDefault("ui.reset", "\x1b[0m")
}

// New returns a viper instance reading GAMMA_* environment variables on top
// of the defaults, e.g. GAMMA_LOG_LEVEL=debug.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEnvFile exports the variables of a dotenv file so that New picks them
// up. Variables already present in the environment are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file into v and decodes the result.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Game.MaxCells == 0 {
		return errors.New("game.max_cells must be positive")
	}
	return nil
}

// Default returns the built-in configuration, ignoring the environment.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}
