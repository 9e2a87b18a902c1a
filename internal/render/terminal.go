package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/KaramelBytes/postpulse/internal/analysis"
	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/format"
	"github.com/KaramelBytes/postpulse/internal/logging"
)

// Terminal writes dashboards as colored text.
type Terminal struct {
	w      io.Writer
	colors map[string]*color.Color
}

// NewTerminal creates a renderer for w. mode is auto, always or never; auto
// enables color only when w is a terminal.
func NewTerminal(w io.Writer, mode string) *Terminal {
	t := &Terminal{
		w: w,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"label":    color.New(color.FgCyan),
			"value":    color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"neutral":  color.New(color.FgYellow),
			"muted":    color.New(color.FgHiBlack),
		},
	}
	enabled := colorEnabled(w, mode)
	for _, c := range t.colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// colorEnabled resolves a color mode for w.
func colorEnabled(w io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	return logging.IsTerminal(w)
}

func (t *Terminal) labelColor(l dataset.Label) *color.Color {
	switch l {
	case dataset.Positive:
		return t.colors["positive"]
	case dataset.Negative:
		return t.colors["negative"]
	case dataset.Neutral:
		return t.colors["neutral"]
	}
	return t.colors["muted"]
}

// Accounts prints the account list with profile links.
func (t *Terminal) Accounts(records []dataset.Record, accounts []string, marker string) {
	t.colors["header"].Fprintf(t.w, "ACCOUNTS (%d)\n", len(accounts))
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	for _, a := range accounts {
		fmt.Fprintf(tw, "  %s\t%s\n", a, dataset.ProfileReference(records, a, marker))
	}
	tw.Flush()
}

// Coercions prints how many fields fell back to defaults during loading.
func (t *Terminal) Coercions(name string, rows int, c dataset.Coercions) {
	t.colors["header"].Fprintf(t.w, "DATASET %s\n", name)
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  rows\t%s\n", format.GroupedValue(rows))
	fmt.Fprintf(tw, "  likes coerced to 0\t%s\n", format.GroupedValue(c.Likes))
	fmt.Fprintf(tw, "  missing/invalid dates\t%s\n", format.GroupedValue(c.Date))
	fmt.Fprintf(tw, "  missing/invalid times\t%s\n", format.GroupedValue(c.Time))
	fmt.Fprintf(tw, "  invalid scores\t%s\n", format.GroupedValue(c.Score))
	fmt.Fprintf(tw, "  unknown labels\t%s\n", format.GroupedValue(c.Labels))
	tw.Flush()
}

// Dashboard prints the account overview, the posts table, drill-downs and the
// daily series.
func (t *Terminal) Dashboard(d *analysis.Dashboard) {
	t.colors["title"].Fprintf(t.w, "%s\n", d.Account)
	if d.Profile != "" {
		t.colors["muted"].Fprintf(t.w, "%s\n", d.Profile)
	}
	fmt.Fprintf(t.w, "%s to %s  %s to %s\n\n",
		d.Range.FromDate.Format("02-01-2006"), d.Range.ToDate.Format("02-01-2006"), d.Range.FromTime, d.Range.ToTime)

	s := d.Summary
	t.metric("Total Posts", format.GroupedValue(s.TotalPosts))
	t.metric("Total Likes", s.LikesText())
	t.metric("Total Comments", format.GroupedValue(s.TotalComments))
	t.breakdown(s.Sentiment)
	fmt.Fprintln(t.w)

	t.colors["header"].Fprintln(t.w, "POSTS")
	if len(d.Posts) == 0 {
		t.colors["muted"].Fprintln(t.w, "  no posts in this window")
	} else {
		tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Likes\tComments\tPositive\tNegative\tNeutral\tMajority\t")
		for _, p := range d.Posts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t  %s\n", p.LikesText(), format.GroupedValue(p.Comments),
				format.Percent(p.Sentiment.Positive), format.Percent(p.Sentiment.Negative), format.Percent(p.Sentiment.Neutral),
				p.MajorityText(), p.URL)
		}
		tw.Flush()
	}

	for _, p := range d.Selected {
		fmt.Fprintln(t.w)
		t.colors["header"].Fprintln(t.w, p.URL)
		if p.Caption != "" {
			fmt.Fprintf(t.w, "  %s\n", oneLine(p.Caption))
		}
		t.metric("Likes", p.LikesText())
		t.metric("Posted", strings.TrimSpace(postedAt(p.PostSummary)))
		t.breakdown(p.Sentiment)
		for _, c := range p.Entries {
			fmt.Fprintf(t.w, "  %s ", oneLine(c.Text))
			t.labelColor(c.Label).Fprintln(t.w, c.SentimentText())
		}
	}

	if len(d.Timeline.Comments) > 0 {
		fmt.Fprintln(t.w)
		t.colors["header"].Fprintln(t.w, "DAILY ACTIVITY")
		tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  Date\tPosts\tComments\tPositive\tNegative\tNeutral")
		for i, c := range d.Timeline.Comments {
			sd := d.Timeline.Sentiment[i]
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", c.Date.Format("02-01-2006"),
				format.GroupedValue(d.Timeline.Posts[i].Count), format.GroupedValue(c.Count),
				format.GroupedValue(sd.Positive), format.GroupedValue(sd.Negative), format.GroupedValue(sd.Neutral))
		}
		tw.Flush()
	}
}

func (t *Terminal) metric(name, value string) {
	t.colors["label"].Fprintf(t.w, "  %-15s", name)
	t.colors["value"].Fprintln(t.w, value)
}

func (t *Terminal) breakdown(b analysis.Breakdown) {
	t.colors["label"].Fprintf(t.w, "  %-15s", "Sentiment")
	for i, l := range dataset.Labels {
		if i > 0 {
			fmt.Fprint(t.w, "  ")
		}
		t.labelColor(l).Fprintf(t.w, "%s %s", l, format.Percent(b.Get(l)))
	}
	fmt.Fprintln(t.w)
}

func postedAt(p analysis.PostSummary) string {
	if p.PostedDate.IsZero() {
		return "-"
	}
	return p.PostedDate.Format("02-01-2006") + " " + p.PostedTime.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
