package analysis

import (
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// DailyCount is one bucket of a per-day series.
type DailyCount struct {
	Date  time.Time `json:"date" yaml:"date"`
	Count int       `json:"count" yaml:"count"`
}

// DailySentiment holds per-category comment counts for one day.
type DailySentiment struct {
	Date     time.Time `json:"date" yaml:"date"`
	Positive int       `json:"positive" yaml:"positive"`
	Negative int       `json:"negative" yaml:"negative"`
	Neutral  int       `json:"neutral" yaml:"neutral"`
}

// Timeline bundles the three daily series over the same day axis.
type Timeline struct {
	Posts     []DailyCount     `json:"posts" yaml:"posts"`
	Comments  []DailyCount     `json:"comments" yaml:"comments"`
	Sentiment []DailySentiment `json:"sentiment" yaml:"sentiment"`
}

// BuildTimeline computes all daily series for records.
func BuildTimeline(records []dataset.Record) Timeline {
	return Timeline{
		Posts:     DailyPostCounts(records),
		Comments:  DailyCommentCounts(records),
		Sentiment: DailySentimentCounts(records),
	}
}

// dayAxis lists every calendar day from the earliest to the latest valid date.
func dayAxis(records []dataset.Record) []time.Time {
	var lo, hi time.Time
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if lo.IsZero() || r.Date.Before(lo) {
			lo = r.Date
		}
		if hi.IsZero() || r.Date.After(hi) {
			hi = r.Date
		}
	}
	if lo.IsZero() {
		return nil
	}
	var days []time.Time
	for d := lo; !d.After(hi); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DailyPostCounts counts distinct posts per day, dated by their caption row.
func DailyPostCounts(records []dataset.Record) []DailyCount {
	posts := make(map[time.Time]map[string]struct{})
	for _, r := range records {
		if r.Date.IsZero() || !r.HasCaption || r.URL == "" {
			continue
		}
		set, ok := posts[r.Date]
		if !ok {
			set = make(map[string]struct{})
			posts[r.Date] = set
		}
		set[r.URL] = struct{}{}
	}
	days := dayAxis(records)
	out := make([]DailyCount, len(days))
	for i, d := range days {
		out[i] = DailyCount{Date: d, Count: len(posts[d])}
	}
	return out
}

// DailyCommentCounts counts comment rows per day.
func DailyCommentCounts(records []dataset.Record) []DailyCount {
	counts := make(map[time.Time]int)
	for _, r := range records {
		if r.Date.IsZero() || !r.HasComment {
			continue
		}
		counts[r.Date]++
	}
	days := dayAxis(records)
	out := make([]DailyCount, len(days))
	for i, d := range days {
		out[i] = DailyCount{Date: d, Count: counts[d]}
	}
	return out
}

// DailySentimentCounts counts labeled comments per day and category. Every
// day on the axis carries all three categories, zero when absent.
func DailySentimentCounts(records []dataset.Record) []DailySentiment {
	counts := make(map[time.Time]*Counts)
	for _, r := range records {
		if r.Date.IsZero() || !r.HasComment {
			continue
		}
		c, ok := counts[r.Date]
		if !ok {
			c = &Counts{}
			counts[r.Date] = c
		}
		c.Add(r)
	}
	days := dayAxis(records)
	out := make([]DailySentiment, len(days))
	for i, d := range days {
		out[i] = DailySentiment{Date: d}
		if c, ok := counts[d]; ok {
			out[i].Positive, out[i].Negative, out[i].Neutral = c.Positive, c.Negative, c.Neutral
		}
	}
	return out
}
