package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/postpulse/internal/config"
	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/logging"
	"github.com/KaramelBytes/postpulse/internal/parser"
)

var (
	// Global flags
	cfgFile      string
	debug        bool
	flagData     string
	flagLogLevel string
	flagColor    string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "postpulse",
	Short: "PostPulse: engagement and sentiment dashboards over a social post export",
	Long: `PostPulse loads one CSV/TSV/XLSX export of posts and their comments and
summarizes likes, comments and sentiment per account and per post, filtered by
date and time of day. Use it from the terminal or serve the same views as JSON.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		if errors.Is(err, dataset.ErrDataUnavailable) {
			fmt.Fprintln(os.Stderr, "  The dataset could not be loaded. Check data_path (postpulse config show) and try again.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.postpulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "dataset file: .csv, .tsv or .xlsx (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "colored output: auto|always|never (overrides config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	// Apply CLI overrides if provided
	f := cmd.Root().PersistentFlags()
	if f.Changed("data") && flagData != "" {
		cfg.DataPath = flagData
	}
	if f.Changed("log-level") && flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if f.Changed("color") && flagColor != "" {
		cfg.Color = flagColor
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}

// loadDataset reads the configured source once for the current command.
func loadDataset() (*dataset.Dataset, error) {
	ds, err := dataset.Load(cfg.DataPath, dataset.LoadOptions{
		Source: parser.Options{SheetName: cfg.DataSheet},
		Normalize: dataset.Options{
			DateLayouts: cfg.DateLayouts,
			TimeLayouts: cfg.TimeLayouts,
		},
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", ds.Name).
		Int("records", len(ds.Records)).
		Int("coerced", ds.Coercions.Total()).
		Msg("dataset loaded")
	return ds, nil
}
