package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ib-77/ropx/pkg/rop/exec"
)

const envPrefix = "ROPX"

// Config drives the example programs.
type Config struct {
	Workers   int           `mapstructure:"workers" validate:"min=1,max=4096"`
	LogLevel  string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string        `mapstructure:"log_format" validate:"oneof=console json"`
	Steps     int           `mapstructure:"steps" validate:"min=1,max=64"`
	StepDelay time.Duration `mapstructure:"step_delay" validate:"gt=0"`
}

// LoaderConfig holds optional file overrides.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", exec.DefaultWorkers())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("steps", 3)
	v.SetDefault("step_delay", 50*time.Millisecond)
}

// Load reads defaults, an optional config file, an optional .env file and
// ROPX_* environment variables, in increasing priority, then validates.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if lc.EnvFile != "" {
		return nil, fmt.Errorf("env file %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", lc.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger builds the logger described by the config, writing to w.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if c.LogFormat == "console" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	} else {
		l = zerolog.New(w)
	}
	return l.Level(level).With().Timestamp().Logger()
}
