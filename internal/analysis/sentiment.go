package analysis

import (
	"fmt"

	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/format"
)

// Counts tallies comments per sentiment category. Comments whose label is
// absent or not one of the three categories land in Unlabeled.
type Counts struct {
	Positive  int `json:"positive" yaml:"positive"`
	Negative  int `json:"negative" yaml:"negative"`
	Neutral   int `json:"neutral" yaml:"neutral"`
	Unlabeled int `json:"unlabeled" yaml:"unlabeled"`
}

// Add counts one comment.
func (c *Counts) Add(r dataset.Record) {
	if !r.HasLabel {
		c.Unlabeled++
		return
	}
	switch r.Label {
	case dataset.Positive:
		c.Positive++
	case dataset.Negative:
		c.Negative++
	case dataset.Neutral:
		c.Neutral++
	default:
		c.Unlabeled++
	}
}

// Labeled is the number of comments in one of the three categories.
func (c Counts) Labeled() int { return c.Positive + c.Negative + c.Neutral }

// Get returns the count for a category.
func (c Counts) Get(l dataset.Label) int {
	switch l {
	case dataset.Positive:
		return c.Positive
	case dataset.Negative:
		return c.Negative
	case dataset.Neutral:
		return c.Neutral
	}
	return 0
}

// Breakdown converts counts into percentages of the labeled comments. With no
// labeled comments every category is 0.
func (c Counts) Breakdown() Breakdown {
	n := c.Labeled()
	if n == 0 {
		return Breakdown{}
	}
	pct := func(k int) float64 { return 100 * float64(k) / float64(n) }
	return Breakdown{
		Positive: pct(c.Positive),
		Negative: pct(c.Negative),
		Neutral:  pct(c.Neutral),
		Labeled:  n,
	}
}

// Breakdown is the Positive/Negative/Neutral distribution of a group.
type Breakdown struct {
	Positive float64 `json:"positive" yaml:"positive"`
	Negative float64 `json:"negative" yaml:"negative"`
	Neutral  float64 `json:"neutral" yaml:"neutral"`
	Labeled  int     `json:"labeled" yaml:"labeled"`
}

// Get returns the percentage for a category.
func (b Breakdown) Get(l dataset.Label) float64 {
	switch l {
	case dataset.Positive:
		return b.Positive
	case dataset.Negative:
		return b.Negative
	case dataset.Neutral:
		return b.Neutral
	}
	return 0
}

// Majority returns the category with the strictly highest percentage. Ties go
// to the earlier category in dataset.Labels (Positive, Negative, Neutral), so
// an empty breakdown reports Positive at 0%.
func (b Breakdown) Majority() (dataset.Label, float64) {
	best := dataset.Labels[0]
	bestPct := b.Get(best)
	for _, l := range dataset.Labels[1:] {
		if p := b.Get(l); p > bestPct {
			best, bestPct = l, p
		}
	}
	return best, bestPct
}

// MajorityText renders the majority as "Positive (66.7%)".
func (b Breakdown) MajorityText() string {
	l, p := b.Majority()
	return fmt.Sprintf("%s (%s)", l, format.Percent(p))
}
