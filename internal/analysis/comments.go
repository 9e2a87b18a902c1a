package analysis

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// Comment is one comment row of a post, as shown in the drill-down view.
type Comment struct {
	Line     int           `json:"line" yaml:"line"`
	Text     string        `json:"text" yaml:"text"`
	Label    dataset.Label `json:"label,omitempty" yaml:"label,omitempty"`
	HasScore bool          `json:"-" yaml:"-"`
	Score    float64       `json:"score" yaml:"score"`
	Date     time.Time     `json:"date" yaml:"date"`
	Time     dataset.Clock `json:"time" yaml:"time"`
}

// SentimentText renders the label and score as "(Positive: 0.91)". A missing
// label or score shows as "-".
func (c Comment) SentimentText() string {
	label, score := string(c.Label), "-"
	if label == "" {
		label = "-"
	}
	if c.HasScore {
		score = strconv.FormatFloat(c.Score, 'f', -1, 64)
	}
	return fmt.Sprintf("(%s: %s)", label, score)
}

// PostDetail pairs a post summary with its comments.
type PostDetail struct {
	PostSummary `yaml:",inline"`
	Entries     []Comment `json:"entries" yaml:"entries"`
}

// CommentsFor returns the comment rows of url in input order.
func CommentsFor(records []dataset.Record, url string) []Comment {
	out := []Comment{}
	for _, r := range records {
		if r.URL != url || !r.HasComment {
			continue
		}
		c := Comment{Line: r.Line, Text: r.Comment, HasScore: r.HasScore, Score: r.Score, Date: r.Date, Time: r.Time}
		if r.HasLabel {
			c.Label = r.Label
		}
		out = append(out, c)
	}
	return out
}

// Details attaches comments to each summary.
func Details(records []dataset.Record, summaries []PostSummary) []PostDetail {
	out := make([]PostDetail, len(summaries))
	for i, s := range summaries {
		out[i] = PostDetail{PostSummary: s, Entries: CommentsFor(records, s.URL)}
	}
	return out
}
