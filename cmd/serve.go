package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/postpulse/internal/analysis"
	"github.com/KaramelBytes/postpulse/internal/server"
)

var (
	srvHost string
	srvPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dashboards as a read-only JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		sc := serverConfig()
		if cmd.Flags().Changed("host") && srvHost != "" {
			sc.Host = srvHost
		}
		if cmd.Flags().Changed("port") && srvPort > 0 {
			sc.Port = srvPort
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opt := analysis.DefaultOptions()
		opt.ProfileMarker = cfg.ProfileMarker
		srv := server.New(ds, sc, opt, reg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func serverConfig() server.Config {
	sc := server.DefaultConfig()
	if cfg.ServerHost != "" {
		sc.Host = cfg.ServerHost
	}
	if cfg.ServerPort > 0 {
		sc.Port = cfg.ServerPort
	}
	if cfg.ReadTimeoutSec > 0 {
		sc.ReadTimeout = time.Duration(cfg.ReadTimeoutSec) * time.Second
	}
	if cfg.WriteTimeoutSec > 0 {
		sc.WriteTimeout = time.Duration(cfg.WriteTimeoutSec) * time.Second
	}
	sc.RateLimitRPS = cfg.RateLimitRPS
	if cfg.RateLimitBurst > 0 {
		sc.RateLimitBurst = cfg.RateLimitBurst
	}
	sc.DateLayouts = cfg.DateLayouts
	sc.TimeLayouts = cfg.TimeLayouts
	return sc
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&srvHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVar(&srvPort, "port", 0, "listen port (overrides config)")
}
