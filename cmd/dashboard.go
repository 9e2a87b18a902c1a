package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/postpulse/internal/analysis"
	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/render"
)

var (
	dashFrom     string
	dashTo       string
	dashFromTime string
	dashToTime   string
	dashPosts    []string
	dashAllPosts bool
	dashFormat   string
	dashOutput   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <account>",
	Short: "Show engagement and sentiment for one account",
	Long: `Summarize one account's posts within a date and time-of-day window.
Omitted bounds default to the account's earliest and latest activity; bounds
outside that range are clamped. Use --post (repeatable) or --all-posts to
include comments and daily activity for specific posts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account := args[0]
		rg, err := parseWindow(dashFrom, dashTo, dashFromTime, dashToTime)
		if err != nil {
			return err
		}
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		if !dataset.HasAccount(ds.Records, account) {
			return fmt.Errorf("account %q not found (available: %s)", account, strings.Join(dataset.ListAccounts(ds.Records), ", "))
		}

		opt := analysis.DefaultOptions()
		opt.ProfileMarker = cfg.ProfileMarker
		d := analysis.Build(ds.Records, analysis.Selection{
			Account:  account,
			Range:    rg,
			Posts:    dashPosts,
			AllPosts: dashAllPosts,
		}, opt)
		if missing := missingPosts(d, dashPosts); len(missing) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: no posts in the window for %s\n", strings.Join(missing, ", "))
		}

		out := cmd.OutOrStdout()
		switch strings.ToLower(dashFormat) {
		case "markdown", "md":
			return emit(out, dashOutput, "dashboard", []byte(d.Markdown()))
		}
		b, structured, err := encode(d, dashFormat)
		if err != nil {
			return err
		}
		if !structured {
			return renderText(out, dashOutput, "dashboard", func(r *render.Terminal) { r.Dashboard(d) })
		}
		return emit(out, dashOutput, "dashboard", b)
	},
}

// parseWindow reads the optional window flags; nil means no explicit bounds.
func parseWindow(from, to, fromTime, toTime string) (*analysis.Range, error) {
	var rg analysis.Range
	set := false
	if from != "" {
		d, ok := dataset.ParseDate(from, cfg.DateLayouts)
		if !ok {
			return nil, fmt.Errorf("invalid --from date: %s (use DD-MM-YYYY)", from)
		}
		rg.FromDate, set = d, true
	}
	if to != "" {
		d, ok := dataset.ParseDate(to, cfg.DateLayouts)
		if !ok {
			return nil, fmt.Errorf("invalid --to date: %s (use DD-MM-YYYY)", to)
		}
		rg.ToDate, set = d, true
	}
	if fromTime != "" {
		c, ok := dataset.ParseClock(fromTime, cfg.TimeLayouts)
		if !ok {
			return nil, fmt.Errorf("invalid --from-time: %s (use HH:MM:SS)", fromTime)
		}
		rg.FromTime, set = c, true
	}
	if toTime != "" {
		c, ok := dataset.ParseClock(toTime, cfg.TimeLayouts)
		if !ok {
			return nil, fmt.Errorf("invalid --to-time: %s (use HH:MM:SS)", toTime)
		}
		rg.ToTime, set = c, true
	}
	if !rg.FromDate.IsZero() && !rg.ToDate.IsZero() && rg.FromDate.After(rg.ToDate) {
		return nil, fmt.Errorf("--from %s is after --to %s", from, to)
	}
	if !set {
		return nil, nil
	}
	return &rg, nil
}

func missingPosts(d *analysis.Dashboard, urls []string) []string {
	have := make(map[string]bool, len(d.Selected))
	for _, p := range d.Selected {
		have[p.URL] = true
	}
	var missing []string
	for _, u := range urls {
		if !have[u] {
			missing = append(missing, u)
		}
	}
	return missing
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashFrom, "from", "", "first date to include (DD-MM-YYYY)")
	dashboardCmd.Flags().StringVar(&dashTo, "to", "", "last date to include (DD-MM-YYYY)")
	dashboardCmd.Flags().StringVar(&dashFromTime, "from-time", "", "earliest time of day to include (HH:MM:SS)")
	dashboardCmd.Flags().StringVar(&dashToTime, "to-time", "", "latest time of day to include (HH:MM:SS)")
	dashboardCmd.Flags().StringArrayVar(&dashPosts, "post", nil, "post URL to drill into (repeatable)")
	dashboardCmd.Flags().BoolVar(&dashAllPosts, "all-posts", false, "drill into every post in the window")
	dashboardCmd.Flags().StringVar(&dashFormat, "format", "text", "output format: text|markdown|json|yaml")
	dashboardCmd.Flags().StringVarP(&dashOutput, "output", "o", "", "optional path to write the dashboard")
}
