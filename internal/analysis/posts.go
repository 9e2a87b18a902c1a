package analysis

import (
	"sort"
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/format"
)

// PostSummary is the per-URL aggregate of a filtered record set.
type PostSummary struct {
	URL         string        `json:"url" yaml:"url"`
	Caption     string        `json:"caption" yaml:"caption"`
	Likes       int64         `json:"likes" yaml:"likes"`
	Comments    int           `json:"comments" yaml:"comments"`
	Counts      Counts        `json:"counts" yaml:"counts"`
	Sentiment   Breakdown     `json:"sentiment" yaml:"sentiment"`
	Majority    dataset.Label `json:"majority" yaml:"majority"`
	MajorityPct float64       `json:"majority_pct" yaml:"majority_pct"`
	// PostedDate and PostedTime come from the caption row; zero when it was filtered out.
	PostedDate time.Time     `json:"posted_date" yaml:"posted_date"`
	PostedTime dataset.Clock `json:"posted_time" yaml:"posted_time"`
}

// LikesText is the grouped-digit like count.
func (p PostSummary) LikesText() string { return format.Grouped(p.Likes) }

// MajorityText renders the majority label with its percentage.
func (p PostSummary) MajorityText() string { return p.Sentiment.MajorityText() }

type postAcc struct {
	sum        PostSummary
	hasCaption bool
}

// SummarizePosts groups records by URL and returns one summary per distinct
// non-empty URL, in ascending URL order. Caption and likes come from the first
// caption-bearing row of the group; without one the post reports an empty
// caption and 0 likes.
func SummarizePosts(records []dataset.Record) []PostSummary {
	groups := make(map[string]*postAcc)
	for _, r := range records {
		if r.URL == "" {
			continue
		}
		g, ok := groups[r.URL]
		if !ok {
			g = &postAcc{sum: PostSummary{URL: r.URL}}
			groups[r.URL] = g
		}
		if r.HasCaption && !g.hasCaption {
			g.hasCaption = true
			g.sum.Caption = r.Caption
			g.sum.Likes = r.Likes
			g.sum.PostedDate = r.Date
			g.sum.PostedTime = r.Time
		}
		if r.HasComment {
			g.sum.Comments++
			g.sum.Counts.Add(r)
		}
	}

	urls := make([]string, 0, len(groups))
	for u := range groups {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	out := make([]PostSummary, 0, len(urls))
	for _, u := range urls {
		s := groups[u].sum
		s.Sentiment = s.Counts.Breakdown()
		s.Majority, s.MajorityPct = s.Sentiment.Majority()
		out = append(out, s)
	}
	return out
}
