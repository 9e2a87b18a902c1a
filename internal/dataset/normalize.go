package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDateLayouts are tried in order; day-first forms come first.
var DefaultDateLayouts = []string{"02-01-2006", "2-1-2006", "02/01/2006", "2006-01-02"}

// DefaultTimeLayouts are tried in order.
var DefaultTimeLayouts = []string{"15:04:05"}

// nullTokens are cell values read as "no value".
var nullTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"null": {}, "NULL": {}, "None": {}, "<NA>": {}, "#N/A": {}, "#NA": {},
}

// Options controls per-field coercion.
type Options struct {
	DateLayouts []string
	TimeLayouts []string
}

// DefaultOptions returns the layouts used by the export this tool targets.
func DefaultOptions() Options {
	return Options{DateLayouts: DefaultDateLayouts, TimeLayouts: DefaultTimeLayouts}
}

// Coercions counts per-field values that were replaced by a default or sentinel.
type Coercions struct {
	Likes  int `json:"likes" yaml:"likes"`
	Date   int `json:"date" yaml:"date"`
	Time   int `json:"time" yaml:"time"`
	Score  int `json:"score" yaml:"score"`
	Labels int `json:"labels" yaml:"labels"`
}

// Total sums all counters.
func (c Coercions) Total() int { return c.Likes + c.Date + c.Time + c.Score + c.Labels }

// IsNull reports whether a cell carries no value.
func IsNull(s string) bool {
	_, ok := nullTokens[strings.TrimSpace(s)]
	return ok
}

// ParseLikes strips thousands separators and whitespace and parses the rest.
// Missing, unparseable and negative values yield 0 with ok=false; fractions
// truncate toward zero.
func ParseLikes(s string) (int64, bool) {
	if IsNull(s) {
		return 0, false
	}
	raw := strings.ReplaceAll(s, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// ParseDate parses a calendar date with the first matching layout and returns
// it at midnight UTC. The zero time is returned when nothing matches.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	if IsNull(s) {
		return time.Time{}, false
	}
	v := strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.Parse(l, v); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ParseClock parses a time of day with the first matching layout.
func ParseClock(s string, layouts []string) (Clock, bool) {
	if IsNull(s) {
		return Clock{}, false
	}
	v := strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.Parse(l, v); err == nil {
			return ClockOf(t.Hour(), t.Minute(), t.Second()), true
		}
	}
	return Clock{}, false
}

// CanonicalLabel trims and title-cases a sentiment label. present is false
// for a missing cell, which stays distinct from an empty label.
func CanonicalLabel(s string) (label Label, present bool) {
	if IsNull(s) {
		return "", false
	}
	return Label(cases.Title(language.Und).String(strings.TrimSpace(s))), true
}

// ParseScore parses a sentiment score.
func ParseScore(s string) (float64, bool) {
	if IsNull(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Normalize coerces raw rows field by field. A malformed field never drops
// its row; it is replaced by its default and counted in the returned Coercions.
func Normalize(rows []RawRecord, opt Options) ([]Record, Coercions) {
	if len(opt.DateLayouts) == 0 {
		opt.DateLayouts = DefaultDateLayouts
	}
	if len(opt.TimeLayouts) == 0 {
		opt.TimeLayouts = DefaultTimeLayouts
	}
	var cc Coercions
	out := make([]Record, 0, len(rows))
	for _, raw := range rows {
		rec := Record{
			Line:     raw.Line,
			Username: cellText(raw.Username),
			URL:      cellText(raw.URL),
		}
		if !IsNull(raw.Captions) {
			rec.Caption, rec.HasCaption = raw.Captions, true
		}
		if !IsNull(raw.Comments) {
			rec.Comment, rec.HasComment = raw.Comments, true
		}

		var ok bool
		if rec.Likes, ok = ParseLikes(raw.Likes); !ok && !IsNull(raw.Likes) {
			cc.Likes++
		}
		if rec.Date, ok = ParseDate(raw.Date, opt.DateLayouts); !ok {
			cc.Date++
		}
		if rec.Time, ok = ParseClock(raw.Time, opt.TimeLayouts); !ok {
			cc.Time++
		}
		if rec.HasComment {
			rec.Label, rec.HasLabel = CanonicalLabel(raw.SentimentLabel)
			if rec.HasLabel && !rec.Label.Known() {
				cc.Labels++
			}
			if rec.Score, ok = ParseScore(raw.SentimentScore); ok {
				rec.HasScore = true
			} else if !IsNull(raw.SentimentScore) {
				cc.Score++
			}
		}
		out = append(out, rec)
	}
	return out, cc
}

func cellText(s string) string {
	if IsNull(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
