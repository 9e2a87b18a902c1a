package analysis

import (
	"testing"
	"time"

	"github.com/KaramelBytes/postpulse/internal/dataset"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := dataset.ParseDate(s, dataset.DefaultDateLayouts)
	if !ok {
		t.Fatalf("bad date %q", s)
	}
	return d
}

func clock(t *testing.T, s string) dataset.Clock {
	t.Helper()
	c, ok := dataset.ParseClock(s, dataset.DefaultTimeLayouts)
	if !ok {
		t.Fatalf("bad time %q", s)
	}
	return c
}

func captionRow(t *testing.T, user, url, date, tm, caption string, likes int64) dataset.Record {
	return dataset.Record{Username: user, URL: url, Date: day(t, date), Time: clock(t, tm),
		Caption: caption, HasCaption: true, Likes: likes}
}

func commentRow(t *testing.T, user, url, date, tm, text string, label dataset.Label) dataset.Record {
	r := dataset.Record{Username: user, URL: url, Date: day(t, date), Time: clock(t, tm),
		Comment: text, HasComment: true}
	if label != "" {
		r.Label, r.HasLabel = label, true
	}
	return r
}

// scenario is one account with post A (1500 likes, 2 Positive + 1 Negative)
// and post B (500 likes, no comments).
func scenario(t *testing.T) []dataset.Record {
	return []dataset.Record{
		captionRow(t, "alice", "A", "01-05-2024", "10:00:00", "Sunset", 1500),
		commentRow(t, "alice", "A", "01-05-2024", "10:05:00", "love it", dataset.Positive),
		commentRow(t, "alice", "A", "02-05-2024", "11:00:00", "great", dataset.Positive),
		commentRow(t, "alice", "A", "02-05-2024", "12:00:00", "meh", dataset.Negative),
		captionRow(t, "alice", "B", "03-05-2024", "09:00:00", "Coffee", 500),
	}
}
