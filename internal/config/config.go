// Package config loads runtime settings from defaults, an optional config
// file, a .env file and KARTULI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. KARTULI_DB.
const EnvPrefix = "KARTULI"

// Config holds application configuration.
type Config struct {
	Env            string        `mapstructure:"env"`               // production or development
	DBPath         string        `mapstructure:"db"`                // SQLite file backing the local store
	LogFile        string        `mapstructure:"log_file"`          // rotated log file
	FeedbackDelay  time.Duration `mapstructure:"feedback_delay"`    // pause between an answer and the next question
	SpellingSize   int           `mapstructure:"spelling_size"`     // words per spelling run
	GrammarQuizLen int           `mapstructure:"grammar_quiz_size"` // examples per grammar quiz
}

// Development reports whether the development profile is active.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration. configFile may be empty, in which case
// $XDG_CONFIG_HOME/kartuli/config.yaml is used when present.
func Load(configFile string) (*Config, error) {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	v := viper.New()
	dataDir, err := dataHome()
	if err != nil {
		return nil, err
	}
	stateDir, err := stateHome()
	if err != nil {
		return nil, err
	}

	v.SetDefault("env", "production")
	v.SetDefault("db", filepath.Join(dataDir, "kartuli", "kartuli.db"))
	v.SetDefault("log_file", filepath.Join(stateDir, "kartuli", "kartuli.log"))
	v.SetDefault("feedback_delay", "1500ms")
	v.SetDefault("spelling_size", 10)
	v.SetDefault("grammar_quiz_size", 5)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configHome(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "kartuli"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path is empty"))
	}
	if c.FeedbackDelay < 0 {
		errs = append(errs, fmt.Errorf("feedback_delay %s is negative", c.FeedbackDelay))
	}
	if c.SpellingSize < 0 {
		errs = append(errs, fmt.Errorf("spelling_size %d is negative", c.SpellingSize))
	}
	if c.GrammarQuizLen < 0 {
		errs = append(errs, fmt.Errorf("grammar_quiz_size %d is negative", c.GrammarQuizLen))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func dataHome() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

func stateHome() (string, error) {
	return xdgDir("XDG_STATE_HOME", ".local", "state")
}

func configHome() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env string, fallback ...string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}
