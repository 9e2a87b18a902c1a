package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. POSTPULSE_DATA_PATH.
const EnvPrefix = "POSTPULSE"

// Global configuration structure.
type Global struct {
	DataPath      string   `mapstructure:"data_path" yaml:"data_path"`
	DataSheet     string   `mapstructure:"data_sheet" yaml:"data_sheet"`
	DateLayouts   []string `mapstructure:"date_layouts" yaml:"date_layouts"`
	TimeLayouts   []string `mapstructure:"time_layouts" yaml:"time_layouts"`
	ProfileMarker string   `mapstructure:"profile_marker" yaml:"profile_marker"`

	// Output
	Color    string `mapstructure:"color" yaml:"color"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// HTTP server
	ServerHost      string  `mapstructure:"server_host" yaml:"server_host"`
	ServerPort      int     `mapstructure:"server_port" yaml:"server_port"`
	ReadTimeoutSec  int     `mapstructure:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec int     `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec"`
	RateLimitRPS    float64 `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst  int     `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"data_path", "data_sheet", "date_layouts", "time_layouts", "profile_marker",
	"color", "log_level",
	"server_host", "server_port", "read_timeout_sec", "write_timeout_sec",
	"rate_limit_rps", "rate_limit_burst",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_path", "insta_posts_1.csv")
	v.SetDefault("data_sheet", "")
	v.SetDefault("date_layouts", []string{"02-01-2006", "2-1-2006", "02/01/2006", "2006-01-02"})
	v.SetDefault("time_layouts", []string{"15:04:05"})
	v.SetDefault("profile_marker", "/p/")
	v.SetDefault("color", "auto")
	v.SetDefault("log_level", "info")
	v.SetDefault("server_host", "127.0.0.1")
	v.SetDefault("server_port", 8080)
	v.SetDefault("read_timeout_sec", 10)
	v.SetDefault("write_timeout_sec", 10)
	v.SetDefault("rate_limit_rps", 20.0)
	v.SetDefault("rate_limit_burst", 40)
}

// DefaultPath returns ~/.postpulse/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".postpulse", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.postpulse/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A .env file in the working
// directory is read first and never overrides variables already set.
func Load(cfgFile string) (*Global, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
