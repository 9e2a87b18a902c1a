package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/postpulse/internal/config"
	"github.com/KaramelBytes/postpulse/internal/utils"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set PostPulse configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		b, err := utils.YAML(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Long:  "Set a config value and save to disk. Keys: " + strings.Join(cfgpkg.Keys, ", ") + ".\nList values are comma-separated.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := setKey(cfg, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func setKey(c *cfgpkg.Global, key, val string) error {
	positiveInt := func() (int, error) {
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return 0, fmt.Errorf("invalid positive int for %s: %v", key, val)
		}
		return i, nil
	}
	var err error
	switch key {
	case "data_path":
		c.DataPath = val
	case "data_sheet":
		c.DataSheet = val
	case "date_layouts":
		c.DateLayouts = splitList(val)
	case "time_layouts":
		c.TimeLayouts = splitList(val)
	case "profile_marker":
		if val == "" {
			return fmt.Errorf("profile_marker cannot be empty")
		}
		c.ProfileMarker = val
	case "color":
		switch strings.ToLower(val) {
		case "auto", "always", "never":
			c.Color = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid color: %s (use auto|always|never)", val)
		}
	case "log_level":
		switch strings.ToLower(val) {
		case "trace", "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
		}
	case "server_host":
		c.ServerHost = val
	case "server_port":
		c.ServerPort, err = positiveInt()
	case "read_timeout_sec":
		c.ReadTimeoutSec, err = positiveInt()
	case "write_timeout_sec":
		c.WriteTimeoutSec, err = positiveInt()
	case "rate_limit_burst":
		c.RateLimitBurst, err = positiveInt()
	case "rate_limit_rps":
		f, perr := strconv.ParseFloat(val, 64)
		if perr != nil || f < 0 {
			return fmt.Errorf("invalid float for rate_limit_rps: %v", val)
		}
		c.RateLimitRPS = f
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return err
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
