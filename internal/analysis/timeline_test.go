package analysis

import (
	"testing"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

func TestTimelineHasNoGaps(t *testing.T) {
	recs := []dataset.Record{
		captionRow(t, "u", "A", "01-05-2024", "10:00:00", "a", 1),
		commentRow(t, "u", "A", "01-05-2024", "10:01:00", "x", dataset.Positive),
		commentRow(t, "u", "A", "04-05-2024", "10:01:00", "y", dataset.Negative),
		commentRow(t, "u", "A", "04-05-2024", "10:02:00", "z", ""),
		captionRow(t, "u", "B", "04-05-2024", "11:00:00", "b", 1),
	}
	tl := BuildTimeline(recs)
	if len(tl.Posts) != 4 || len(tl.Comments) != 4 || len(tl.Sentiment) != 4 {
		t.Fatalf("series lengths = %d %d %d", len(tl.Posts), len(tl.Comments), len(tl.Sentiment))
	}
	for i := 1; i < 4; i++ {
		if !tl.Sentiment[i].Date.After(tl.Sentiment[i-1].Date) {
			t.Fatalf("dates not ascending at %d", i)
		}
	}
	if tl.Posts[0].Count != 1 || tl.Posts[1].Count != 0 || tl.Posts[3].Count != 1 {
		t.Fatalf("posts = %+v", tl.Posts)
	}
	if tl.Comments[0].Count != 1 || tl.Comments[2].Count != 0 || tl.Comments[3].Count != 2 {
		t.Fatalf("comments = %+v", tl.Comments)
	}
	s := tl.Sentiment[2]
	if s.Positive != 0 || s.Negative != 0 || s.Neutral != 0 {
		t.Fatalf("gap day = %+v", s)
	}
	if last := tl.Sentiment[3]; last.Negative != 1 || last.Positive != 0 {
		t.Fatalf("last day = %+v", last)
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := BuildTimeline(nil)
	if len(tl.Posts) != 0 || len(tl.Comments) != 0 || len(tl.Sentiment) != 0 {
		t.Fatalf("timeline = %+v", tl)
	}
}
