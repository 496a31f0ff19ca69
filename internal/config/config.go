// Package config provides unified configuration loading for rendezvous.
// It supports loading from YAML or TOML files and environment variables.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/logging"
	"github.com/nvandessel/rendezvous/internal/pathutil"
)

// Config contains all rendezvous configuration settings.
type Config struct {
	// Robot contains settings applied to every robot a run creates.
	Robot RobotConfig `json:"robot" yaml:"robot" toml:"robot"`

	// Search contains settings for the rendezvous search itself.
	Search SearchConfig `json:"search" yaml:"search" toml:"search"`

	// Logging contains settings for operational logging and the robot journal.
	Logging LoggingConfig `json:"logging" yaml:"logging" toml:"logging"`
}

// RobotConfig configures robots and their movement.
type RobotConfig struct {
	// DefaultName names robots created without an explicit name.
	DefaultName string `json:"default_name" yaml:"default_name" toml:"default_name"`

	// DefaultDirection is the common starting heading: "positive" or "negative".
	DefaultDirection constants.Direction `json:"default_direction" yaml:"default_direction" toml:"default_direction"`

	// UnitSpeed is the speed both robots start with. Speeds above 1 can step
	// over a parachute without noticing it.
	UnitSpeed int `json:"unit_speed" yaml:"unit_speed" toml:"unit_speed"`

	// LandRange is R for the landing interval [-R, R].
	LandRange int `json:"land_range" yaml:"land_range" toml:"land_range"`

	// Acceleration is the factor applied to the robot that finds a parachute.
	Acceleration int `json:"acceleration" yaml:"acceleration" toml:"acceleration"`
}

// SearchConfig configures the rendezvous search.
type SearchConfig struct {
	// MaxSteps caps the number of lockstep moves in one search.
	MaxSteps int `json:"max_steps" yaml:"max_steps" toml:"max_steps"`

	// PrintSummary prints the journey summary after a successful run.
	PrintSummary bool `json:"print_summary" yaml:"print_summary" toml:"print_summary"`
}

// LoggingConfig configures rendezvous logging behavior.
type LoggingConfig struct {
	// Level sets the stderr log verbosity: "error", "warn", "info" (default), "debug", or "trace".
	// Robot moves are only visible at "debug" and below.
	Level string `json:"level" yaml:"level" toml:"level"`

	// Journal enables the append-only robot journal (robot.jsonl).
	Journal bool `json:"journal" yaml:"journal" toml:"journal"`

	// Dir is the directory the journal is written to. Empty means ~/.rendezvous/logs.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Robot: RobotConfig{
			DefaultName:      constants.DefaultName,
			DefaultDirection: constants.DefaultDirection,
			UnitSpeed:        constants.UnitSpeed,
			LandRange:        constants.DefaultLandRange,
			Acceleration:     constants.DefaultAcceleration,
		},
		Search: SearchConfig{
			MaxSteps:     constants.DefaultMaxSteps,
			PrintSummary: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Journal: true,
		},
	}
}

// DefaultPath returns the YAML config location, ~/.rendezvous/config.yaml.
func DefaultPath() (string, error) {
	global, err := pathutil.GlobalPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(global, "config.yaml"), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.rendezvous/config.yaml (or config.toml) -> environment variables
func Load() (*Config, error) {
	config := Default()

	global, err := pathutil.GlobalPath()
	if err == nil {
		for _, name := range []string{"config.yaml", "config.toml"} {
			configPath := filepath.Join(global, name)
			if _, statErr := os.Stat(configPath); statErr != nil {
				continue
			}
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
			break
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath loads configuration from path and applies environment variable
// overrides. An empty path behaves like Load.
func LoadPath(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}

// LoadFromFile loads configuration from a specific file. Files ending in
// .toml are parsed as TOML; everything else is parsed as YAML.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", pathutil.RedactPath(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", pathutil.RedactPath(path), err)
		}
	}

	config.Logging.Dir = expandEnvVars(config.Logging.Dir)

	return config, nil
}

// Save writes the configuration to path, creating parent directories.
// The format follows the file extension as in LoadFromFile.
func Save(config *Config, path string) error {
	if err := pathutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if !c.Robot.DefaultDirection.Valid() {
		return fmt.Errorf("invalid default_direction: %q (valid: positive, negative)", c.Robot.DefaultDirection)
	}
	if c.Robot.UnitSpeed <= 0 {
		return fmt.Errorf("unit_speed must be positive, got %d", c.Robot.UnitSpeed)
	}
	if c.Robot.LandRange <= 0 {
		return fmt.Errorf("land_range must be positive, got %d", c.Robot.LandRange)
	}
	if c.Robot.Acceleration < constants.MinAcceleration {
		return fmt.Errorf("acceleration must be at least %d, got %d", constants.MinAcceleration, c.Robot.Acceleration)
	}
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", c.Search.MaxSteps)
	}
	if c.Robot.UnitSpeed > constants.MaxUnitSpeed {
		return fmt.Errorf("unit_speed must be at most %d, got %d", constants.MaxUnitSpeed, c.Robot.UnitSpeed)
	}
	if c.Robot.LandRange > constants.MaxLandRange {
		return fmt.Errorf("land_range must be at most %d, got %d", constants.MaxLandRange, c.Robot.LandRange)
	}
	if c.Robot.Acceleration > constants.MaxAcceleration {
		return fmt.Errorf("acceleration must be at most %d, got %d", constants.MaxAcceleration, c.Robot.Acceleration)
	}
	if c.Search.MaxSteps > constants.MaxSearchSteps {
		return fmt.Errorf("max_steps must be at most %d, got %d", constants.MaxSearchSteps, c.Search.MaxSteps)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// JournalDir returns the configured journal directory, or ~/.rendezvous/logs.
func (c *Config) JournalDir() (string, error) {
	if c.Logging.Dir != "" {
		return c.Logging.Dir, nil
	}
	return pathutil.DefaultLogDir()
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RENDEZVOUS_DEFAULT_NAME"); v != "" {
		config.Robot.DefaultName = v
	}
	if v := os.Getenv("RENDEZVOUS_DIRECTION"); v != "" {
		config.Robot.DefaultDirection = constants.Direction(strings.ToLower(v))
	}
	setInt(&config.Robot.UnitSpeed, "RENDEZVOUS_UNIT_SPEED")
	setInt(&config.Robot.LandRange, "RENDEZVOUS_LAND_RANGE")
	setInt(&config.Robot.Acceleration, "RENDEZVOUS_ACCELERATION")

	// RENDEZVOUS_MAX_COUNT is accepted as an older spelling; MAX_STEPS wins.
	setInt(&config.Search.MaxSteps, "RENDEZVOUS_MAX_COUNT")
	setInt(&config.Search.MaxSteps, "RENDEZVOUS_MAX_STEPS")

	if v := os.Getenv("RENDEZVOUS_PRINT_SUMMARY"); v != "" {
		config.Search.PrintSummary = parseBool(v)
	}

	if v := os.Getenv("RENDEZVOUS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("RENDEZVOUS_JOURNAL"); v != "" {
		config.Logging.Journal = parseBool(v)
	}
	if v := os.Getenv("RENDEZVOUS_LOG_DIR"); v != "" {
		config.Logging.Dir = v
	}
}

func setInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func parseBool(v string) bool {
	return v == "true" || v == "1"
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
