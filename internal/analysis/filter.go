package analysis

import (
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// Range is an inclusive date and time-of-day window. Both conditions must hold
// for a record to pass: the date within [FromDate, ToDate] and the time of day
// within [FromTime, ToTime].
type Range struct {
	FromDate time.Time     `json:"from_date" yaml:"from_date"`
	ToDate   time.Time     `json:"to_date" yaml:"to_date"`
	FromTime dataset.Clock `json:"from_time" yaml:"from_time"`
	ToTime   dataset.Clock `json:"to_time" yaml:"to_time"`
}

// Contains reports whether r falls inside the window. Records with a missing
// date or time never do.
func (rg Range) Contains(r dataset.Record) bool {
	if !r.HasDateTime() {
		return false
	}
	if r.Date.Before(rg.FromDate) || r.Date.After(rg.ToDate) {
		return false
	}
	return r.Time.Compare(rg.FromTime) >= 0 && r.Time.Compare(rg.ToTime) <= 0
}

// FilterByRange returns the records inside rg, in input order.
func FilterByRange(records []dataset.Record, rg Range) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if rg.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// DefaultRange spans the observed min/max date and time of day over the
// records with valid values. Without any, the dates fall back to now's
// calendar day and the times to the whole day.
func DefaultRange(records []dataset.Record, now time.Time) Range {
	var rg Range
	for _, r := range records {
		if !r.Date.IsZero() {
			if rg.FromDate.IsZero() || r.Date.Before(rg.FromDate) {
				rg.FromDate = r.Date
			}
			if rg.ToDate.IsZero() || r.Date.After(rg.ToDate) {
				rg.ToDate = r.Date
			}
		}
		if r.Time.Valid() {
			if !rg.FromTime.Valid() || r.Time.Compare(rg.FromTime) < 0 {
				rg.FromTime = r.Time
			}
			if !rg.ToTime.Valid() || r.Time.Compare(rg.ToTime) > 0 {
				rg.ToTime = r.Time
			}
		}
	}
	if rg.FromDate.IsZero() {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		rg.FromDate, rg.ToDate = today, today
	}
	if !rg.FromTime.Valid() {
		rg.FromTime, rg.ToTime = dataset.ClockOf(0, 0, 0), dataset.EndOfDay
	}
	return rg
}

// Clamp limits a requested window to bounds. Unset fields in rg take the
// bound's value.
func (rg Range) Clamp(bounds Range) Range {
	out := rg
	if out.FromDate.IsZero() || out.FromDate.Before(bounds.FromDate) {
		out.FromDate = bounds.FromDate
	}
	if out.FromDate.After(bounds.ToDate) {
		out.FromDate = bounds.ToDate
	}
	if out.ToDate.IsZero() || out.ToDate.After(bounds.ToDate) {
		out.ToDate = bounds.ToDate
	}
	if out.ToDate.Before(bounds.FromDate) {
		out.ToDate = bounds.FromDate
	}
	if !out.FromTime.Valid() || out.FromTime.Compare(bounds.FromTime) < 0 {
		out.FromTime = bounds.FromTime
	}
	if out.FromTime.Compare(bounds.ToTime) > 0 {
		out.FromTime = bounds.ToTime
	}
	if !out.ToTime.Valid() || out.ToTime.Compare(bounds.ToTime) > 0 {
		out.ToTime = bounds.ToTime
	}
	if out.ToTime.Compare(bounds.FromTime) < 0 {
		out.ToTime = bounds.FromTime
	}
	return out
}
