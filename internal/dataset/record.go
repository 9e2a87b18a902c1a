package dataset

import (
	"fmt"
	"time"
)

// Label is a canonical sentiment category.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Labels lists the sentiment categories in tie-break precedence order.
var Labels = [...]Label{Positive, Negative, Neutral}

// Known reports whether l is one of the three sentiment categories.
func (l Label) Known() bool {
	return l == Positive || l == Negative || l == Neutral
}

// RawRecord is one source row with every cell kept as text.
type RawRecord struct {
	Line           int
	Username       string
	URL            string
	Date           string
	Time           string
	Captions       string
	Likes          string
	Comments       string
	SentimentLabel string
	SentimentScore string
}

// Record is a source row after type coercion. A zero Date or an invalid Time
// marks a value that was missing or could not be parsed.
type Record struct {
	Line     int
	Username string
	URL      string
	Date     time.Time
	Time     Clock

	Caption    string
	HasCaption bool
	Likes      int64

	Comment    string
	HasComment bool
	Label      Label
	HasLabel   bool
	Score      float64
	HasScore   bool
}

// HasDateTime reports whether both temporal fields parsed.
func (r Record) HasDateTime() bool {
	return !r.Date.IsZero() && r.Time.Valid()
}

// Clock is a time of day with second precision. The zero value is the
// "missing" sentinel and never compares inside a range.
type Clock struct {
	sec int32
	set bool
}

const secondsPerDay = 24 * 60 * 60

// ClockOf builds a valid Clock; components are taken modulo a day.
func ClockOf(h, m, s int) Clock {
	total := ((h*3600+m*60+s)%secondsPerDay + secondsPerDay) % secondsPerDay
	return Clock{sec: int32(total), set: true}
}

// EndOfDay is 23:59:59.
var EndOfDay = ClockOf(23, 59, 59)

// Valid reports whether c holds a parsed time.
func (c Clock) Valid() bool { return c.set }

// Seconds returns the seconds since midnight, or -1 when c is missing.
func (c Clock) Seconds() int {
	if !c.set {
		return -1
	}
	return int(c.sec)
}

// Compare returns -1, 0 or +1. Missing values order before every valid value.
func (c Clock) Compare(o Clock) int {
	a, b := c.Seconds(), o.Seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (c Clock) String() string {
	if !c.set {
		return ""
	}
	s := int(c.sec)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = Clock{}
		return nil
	}
	v, ok := ParseClock(string(b), DefaultTimeLayouts)
	if !ok {
		return fmt.Errorf("invalid time of day %q", string(b))
	}
	*c = v
	return nil
}
