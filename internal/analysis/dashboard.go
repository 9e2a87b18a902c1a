package analysis

import (
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// Options controls the dashboard pipeline.
type Options struct {
	// ProfileMarker cuts a post URL down to the profile link.
	ProfileMarker string
	// Now supplies the fallback date when an account has no dated rows.
	Now func() time.Time
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{ProfileMarker: dataset.DefaultProfileMarker, Now: time.Now}
}

// Selection is the user's current choice of account, window and posts.
type Selection struct {
	Account string
	// Range is clamped to the account's observed bounds; nil selects all of them.
	Range *Range
	// Posts lists URLs to drill into. AllPosts selects every post in the window.
	Posts    []string
	AllPosts bool
}

// Dashboard is everything the presentation layer renders for one selection.
type Dashboard struct {
	Account  string         `json:"account" yaml:"account"`
	Profile  string         `json:"profile" yaml:"profile"`
	Bounds   Range          `json:"bounds" yaml:"bounds"`
	Range    Range          `json:"range" yaml:"range"`
	Summary  AccountSummary `json:"summary" yaml:"summary"`
	Posts    []PostSummary  `json:"posts" yaml:"posts"`
	Selected []PostDetail   `json:"selected" yaml:"selected"`
	Timeline Timeline       `json:"timeline" yaml:"timeline"`
}

// Build runs the full pipeline: account rows, window filter, post and account
// aggregation, likes ordering, then drill-down and daily series over the
// selected posts. An unknown account yields an empty, well-formed dashboard.
func Build(records []dataset.Record, sel Selection, opt Options) *Dashboard {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	rows := dataset.ForAccount(records, sel.Account)
	bounds := DefaultRange(rows, opt.Now())
	rg := bounds
	if sel.Range != nil {
		rg = sel.Range.Clamp(bounds)
	}
	filtered := FilterByRange(rows, rg)
	posts := SortByLikesDesc(SummarizePosts(filtered))

	var chosen []PostSummary
	if sel.AllPosts {
		chosen = posts
	} else {
		chosen = Select(posts, sel.Posts)
	}
	urls := make([]string, len(chosen))
	for i, p := range chosen {
		urls[i] = p.URL
	}
	scoped := RestrictToPosts(filtered, urls)

	return &Dashboard{
		Account:  sel.Account,
		Profile:  dataset.ProfileReference(rows, sel.Account, opt.ProfileMarker),
		Bounds:   bounds,
		Range:    rg,
		Summary:  SummarizeAccount(sel.Account, filtered),
		Posts:    posts,
		Selected: Details(scoped, chosen),
		Timeline: BuildTimeline(scoped),
	}
}
