package analysis

import (
	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/format"
)

// AccountSummary holds the totals of one account over a filtered record set.
type AccountSummary struct {
	Username      string    `json:"username" yaml:"username"`
	TotalPosts    int       `json:"total_posts" yaml:"total_posts"`
	TotalLikes    int64     `json:"total_likes" yaml:"total_likes"`
	TotalComments int       `json:"total_comments" yaml:"total_comments"`
	Counts        Counts    `json:"counts" yaml:"counts"`
	Sentiment     Breakdown `json:"sentiment" yaml:"sentiment"`
}

// LikesText is the grouped-digit total like count.
func (a AccountSummary) LikesText() string { return format.Grouped(a.TotalLikes) }

// SummarizeAccount totals the given records, which are expected to belong to
// username. Likes are summed once per post, never across comment rows.
func SummarizeAccount(username string, records []dataset.Record) AccountSummary {
	a := AccountSummary{Username: username}
	for _, p := range SummarizePosts(records) {
		a.TotalPosts++
		a.TotalLikes += p.Likes
	}
	for _, r := range records {
		if r.HasComment {
			a.TotalComments++
			a.Counts.Add(r)
		}
	}
	a.Sentiment = a.Counts.Breakdown()
	return a
}
