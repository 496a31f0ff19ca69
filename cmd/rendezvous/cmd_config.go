package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/rendezvous/internal/config"
	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/logging"
	"github.com/nvandessel/rendezvous/internal/pathutil"
)

// configKeys lists the settable keys in display order.
var configKeys = []string{
	"robot.default_name",
	"robot.default_direction",
	"robot.unit_speed",
	"robot.land_range",
	"robot.acceleration",
	"search.max_steps",
	"search.print_summary",
	"logging.level",
	"logging.journal",
	"logging.dir",
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rendezvous configuration",
		Long: `View and modify rendezvous configuration settings.

Configuration is stored in ~/.rendezvous/config.yaml, or in
<root>/.rendezvous/config.yaml when the project has one. RENDEZVOUS_*
environment variables override file settings.

Examples:
  rendezvous config list                          # Show all settings
  rendezvous config get search.max_steps          # Get a specific setting
  rendezvous config set robot.land_range 100      # Set a setting
  rendezvous config set robot.default_direction negative`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}

			fmt.Fprintf(out, "Configuration (%s):\n", displayPath(path))
			section := ""
			for _, key := range configKeys {
				prefix, _, _ := strings.Cut(key, ".")
				if prefix != section {
					fmt.Fprintln(out)
					fmt.Fprintf(out, "%s%s Settings:\n", strings.ToUpper(prefix[:1]), prefix[1:])
					section = prefix
				}
				value, _ := getConfigValue(cfg, key)
				fmt.Fprintf(out, "  %-24s %v\n", key+":", displayValue(value))
			}
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			value, found := getConfigValue(cfg, key)
			if !found {
				if jsonOut {
					json.NewEncoder(out).Encode(map[string]interface{}{
						"error": "key not found",
						"key":   key,
					})
				} else {
					fmt.Fprintf(out, "Unknown configuration key: %s\n", key)
				}
				return nil
			}

			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(out, "%s = %v\n", key, value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]
			value := args[1]

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			// Environment overrides are not persisted, so read the file alone.
			cfg := config.Default()
			if _, statErr := os.Stat(path); statErr == nil {
				if cfg, err = config.LoadFromFile(path); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if err := setConfigValue(cfg, key, value); err != nil {
				if jsonOut {
					json.NewEncoder(out).Encode(map[string]interface{}{
						"error": err.Error(),
						"key":   key,
					})
				} else {
					fmt.Fprintf(out, "Error: %v\n", err)
				}
				return nil
			}

			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"status": "updated",
					"key":    key,
					"value":  value,
				})
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (interface{}, bool) {
	switch key {
	case "robot.default_name":
		return cfg.Robot.DefaultName, true
	case "robot.default_direction":
		return string(cfg.Robot.DefaultDirection), true
	case "robot.unit_speed":
		return cfg.Robot.UnitSpeed, true
	case "robot.land_range":
		return cfg.Robot.LandRange, true
	case "robot.acceleration":
		return cfg.Robot.Acceleration, true
	case "search.max_steps":
		return cfg.Search.MaxSteps, true
	case "search.print_summary":
		return cfg.Search.PrintSummary, true
	case "logging.level":
		return cfg.Logging.Level, true
	case "logging.journal":
		return cfg.Logging.Journal, true
	case "logging.dir":
		return cfg.Logging.Dir, true
	default:
		return nil, false
	}
}

var errUnknownKey = errors.New("unknown configuration key")

// setConfigValue sets a configuration value by dot-notation key. The whole
// configuration must still be valid afterwards.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "robot.default_name":
		if value == "" {
			return fmt.Errorf("default_name must not be empty")
		}
		cfg.Robot.DefaultName = value
	case "robot.default_direction":
		cfg.Robot.DefaultDirection = constants.Direction(strings.ToLower(value))
	case "robot.unit_speed":
		return setInt(&cfg.Robot.UnitSpeed, value, cfg)
	case "robot.land_range":
		return setInt(&cfg.Robot.LandRange, value, cfg)
	case "robot.acceleration":
		return setInt(&cfg.Robot.Acceleration, value, cfg)
	case "search.max_steps":
		return setInt(&cfg.Search.MaxSteps, value, cfg)
	case "search.print_summary":
		cfg.Search.PrintSummary = value == "true" || value == "1"
	case "logging.level":
		if !logging.ValidLevel(value) {
			return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace)", value)
		}
		cfg.Logging.Level = value
	case "logging.journal":
		cfg.Logging.Journal = value == "true" || value == "1"
	case "logging.dir":
		cfg.Logging.Dir = value
	default:
		return fmt.Errorf("%w: %s", errUnknownKey, key)
	}
	return cfg.Validate()
}

func setInt(dst *int, value string, cfg *config.Config) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer: %s", value)
	}
	*dst = n
	return cfg.Validate()
}

// displayPath names the config file for humans.
func displayPath(path string) string {
	if path == "" {
		return "~/" + pathutil.DirName + "/config.yaml"
	}
	return pathutil.RedactPath(path)
}

// displayValue marks empty settings.
func displayValue(v interface{}) interface{} {
	if s, ok := v.(string); ok && s == "" {
		return "(default)"
	}
	return v
}

