package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Seed          int64         `yaml:"seed"`
	RollDelay     time.Duration `yaml:"roll_delay"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	LogFile       string        `yaml:"log_file"`
	Debug         bool          `yaml:"debug"`
	Strict        bool          `yaml:"strict"`
	GeminiAPIKey  string        `yaml:"gemini_api_key"`
	NarratorModel string        `yaml:"narrator_model"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		RollDelay:     time.Second,
		FrameInterval: 50 * time.Millisecond,
		LogFile:       "deadly-dice.log",
		NarratorModel: "gemini-2.5-flash",
	}
}

// LoadConfig reads the YAML file at path, if any, and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DICE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DICE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("DICE_ROLL_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DICE_ROLL_DELAY: %w", err)
		}
		c.RollDelay = d
	}
	if v, ok := os.LookupEnv("DICE_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v := os.Getenv("DICE_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DICE_STRICT: %w", err)
		}
		c.Strict = strict
	}
	if v := os.Getenv("DICE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DICE_DEBUG: %w", err)
		}
		c.Debug = debug
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("DICE_NARRATOR_MODEL"); v != "" {
		c.NarratorModel = v
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.RollDelay <= 0 {
		return fmt.Errorf("roll_delay must be positive, got %s", c.RollDelay)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	if c.FrameInterval > c.RollDelay {
		return fmt.Errorf("frame_interval %s exceeds roll_delay %s", c.FrameInterval, c.RollDelay)
	}
	return nil
}
