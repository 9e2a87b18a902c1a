package analysis

import (
	"testing"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

func TestSummarizePosts(t *testing.T) {
	got := SummarizePosts(scenario(t))
	if len(got) != 2 || got[0].URL != "A" || got[1].URL != "B" {
		t.Fatalf("summaries = %+v", got)
	}
	a := got[0]
	if a.Caption != "Sunset" || a.Likes != 1500 || a.Comments != 3 {
		t.Fatalf("post A = %+v", a)
	}
	if a.MajorityText() != "Positive (66.7%)" || a.Majority != dataset.Positive {
		t.Fatalf("post A majority = %s", a.MajorityText())
	}
	if a.PostedTime.String() != "10:00:00" {
		t.Fatalf("post A posted at %s", a.PostedTime)
	}
}

func TestSummarizePostsFirstCaptionWins(t *testing.T) {
	recs := []dataset.Record{
		commentRow(t, "u", "P", "01-05-2024", "10:00:00", "first", dataset.Neutral),
		captionRow(t, "u", "P", "01-05-2024", "10:01:00", "one", 10),
		captionRow(t, "u", "P", "01-05-2024", "10:02:00", "two", 99),
	}
	got := SummarizePosts(recs)
	if len(got) != 1 || got[0].Caption != "one" || got[0].Likes != 10 {
		t.Fatalf("got %+v", got)
	}
}

func TestSummarizePostsWithoutCaptionRow(t *testing.T) {
	recs := []dataset.Record{
		commentRow(t, "u", "P", "01-05-2024", "10:00:00", "nice", dataset.Positive),
	}
	got := SummarizePosts(recs)
	if len(got) != 1 || got[0].Caption != "" || got[0].Likes != 0 || got[0].Comments != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestSummarizePostsEmpty(t *testing.T) {
	if got := SummarizePosts(nil); got == nil || len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
}

func TestSummarizeAccount(t *testing.T) {
	recs := scenario(t)
	// comment rows carry stray likes that must not be summed
	recs[1].Likes = 42
	a := SummarizeAccount("alice", recs)
	if a.TotalPosts != 2 || a.TotalLikes != 2000 || a.TotalComments != 3 {
		t.Fatalf("account = %+v", a)
	}
	if a.LikesText() != "2,000" {
		t.Fatalf("likes text = %q", a.LikesText())
	}
	if a.Counts.Positive != 2 || a.Counts.Negative != 1 {
		t.Fatalf("counts = %+v", a.Counts)
	}
}

func TestSortByLikesDescNumericAndStable(t *testing.T) {
	in := []PostSummary{
		{URL: "small", Likes: 999},
		{URL: "tie1", Likes: 5},
		{URL: "big", Likes: 1000},
		{URL: "tie2", Likes: 5},
	}
	got := SortByLikesDesc(in)
	want := []string{"big", "small", "tie1", "tie2"}
	for i, w := range want {
		if got[i].URL != w {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].URL, w)
		}
	}
	if in[0].URL != "small" {
		t.Fatalf("input was reordered")
	}
}

func TestSelect(t *testing.T) {
	sorted := []PostSummary{{URL: "b"}, {URL: "a"}, {URL: "c"}}
	got := Select(sorted, []string{"c", "missing", "b"})
	if len(got) != 2 || got[0].URL != "b" || got[1].URL != "c" {
		t.Fatalf("got %+v", got)
	}
	if got := Select(sorted, nil); len(got) != 0 {
		t.Fatalf("empty selection = %+v", got)
	}
}

func TestCommentsFor(t *testing.T) {
	recs := scenario(t)
	recs[3].HasLabel, recs[3].Label = false, ""
	got := CommentsFor(recs, "A")
	if len(got) != 3 || got[0].Text != "love it" || got[2].Label != "" {
		t.Fatalf("got %+v", got)
	}
	if got := CommentsFor(recs, "B"); len(got) != 0 {
		t.Fatalf("post B comments = %+v", got)
	}
}
