package analysis

import (
	"sort"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// SortByLikesDesc returns a copy of summaries ordered by numeric like count,
// highest first. Equal counts keep their input order.
func SortByLikesDesc(summaries []PostSummary) []PostSummary {
	out := make([]PostSummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	return out
}

// Select keeps the summaries whose URL is in urls, preserving their order.
// Unknown URLs are ignored.
func Select(summaries []PostSummary, urls []string) []PostSummary {
	want := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		want[u] = struct{}{}
	}
	out := make([]PostSummary, 0, len(urls))
	for _, s := range summaries {
		if _, ok := want[s.URL]; ok {
			out = append(out, s)
		}
	}
	return out
}

// RestrictToPosts returns the records whose URL is in urls.
func RestrictToPosts(records []dataset.Record, urls []string) []dataset.Record {
	want := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		want[u] = struct{}{}
	}
	var out []dataset.Record
	for _, r := range records {
		if _, ok := want[r.URL]; ok {
			out = append(out, r)
		}
	}
	return out
}
