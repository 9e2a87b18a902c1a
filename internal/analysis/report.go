package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/format"
)

const dateLayout = "2006-01-02"

// Markdown renders a compact dashboard report.
func (d *Dashboard) Markdown() string {
	var b strings.Builder
	b.WriteString("[ACCOUNT OVERVIEW]\n")
	b.WriteString(fmt.Sprintf("Account: %s\n", safeName(d.Account)))
	if d.Profile != "" {
		b.WriteString(fmt.Sprintf("Profile: %s\n", d.Profile))
	}
	b.WriteString(fmt.Sprintf("Window: %s to %s, %s to %s\n",
		d.Range.FromDate.Format(dateLayout), d.Range.ToDate.Format(dateLayout), d.Range.FromTime, d.Range.ToTime))
	s := d.Summary
	b.WriteString(fmt.Sprintf("Posts: %s\n", format.GroupedValue(s.TotalPosts)))
	b.WriteString(fmt.Sprintf("Likes: %s\n", s.LikesText()))
	b.WriteString(fmt.Sprintf("Comments: %s\n", format.GroupedValue(s.TotalComments)))
	b.WriteString(fmt.Sprintf("Sentiment: %s\n", sentimentLine(s.Sentiment)))
	if s.Counts.Unlabeled > 0 {
		b.WriteString(fmt.Sprintf("Unlabeled comments: %s\n", format.GroupedValue(s.Counts.Unlabeled)))
	}

	b.WriteString("\n[POSTS]\n")
	if len(d.Posts) == 0 {
		b.WriteString("No posts in the selected window.\n")
	} else {
		b.WriteString("| Caption | URL | Likes | Comments | Majority | Positive | Negative | Neutral |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
		for _, p := range d.Posts {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				safeVal(truncate(p.Caption, 60)), safeVal(p.URL), p.LikesText(), format.GroupedValue(p.Comments), p.MajorityText(),
				format.Percent(p.Sentiment.Positive), format.Percent(p.Sentiment.Negative), format.Percent(p.Sentiment.Neutral)))
		}
	}

	if len(d.Selected) > 0 {
		b.WriteString("\n[POST DETAILS]\n")
		for _, p := range d.Selected {
			b.WriteString(fmt.Sprintf("- %s (likes %s, %s comments, %s)\n",
				p.URL, p.LikesText(), format.GroupedValue(p.Comments), p.MajorityText()))
			if p.Caption != "" {
				b.WriteString(fmt.Sprintf("  caption: %s\n", safeVal(p.Caption)))
			}
			for _, c := range p.Entries {
				b.WriteString(fmt.Sprintf("  • %s %s\n", safeVal(c.Text), c.SentimentText()))
			}
		}
	}

	if n := len(d.Timeline.Comments); n > 0 {
		b.WriteString("\n[DAILY ACTIVITY]\n")
		b.WriteString("| Date | Posts | Comments | Positive | Negative | Neutral |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for i := 0; i < n; i++ {
			sd := d.Timeline.Sentiment[i]
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				sd.Date.Format(dateLayout), format.GroupedValue(d.Timeline.Posts[i].Count), format.GroupedValue(d.Timeline.Comments[i].Count),
				format.GroupedValue(sd.Positive), format.GroupedValue(sd.Negative), format.GroupedValue(sd.Neutral)))
		}
	}
	return b.String()
}

func sentimentLine(br Breakdown) string {
	parts := make([]string, 0, len(dataset.Labels))
	for _, l := range dataset.Labels {
		parts = append(parts, fmt.Sprintf("%s %s", l, format.Percent(br.Get(l))))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}
func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
