package dataset

import (
	"testing"
	"time"
)

func TestParseLikes(t *testing.T) {
	cases := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"1500", 1500, true},
		{"1,500", 1500, true},
		{" 12,34,567 ", 1234567, true},
		{"12.0", 12, true},
		{"7.9", 7, true},
		{"", 0, false},
		{"nan", 0, false},
		{"lots", 0, false},
		{"-5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLikes(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("ParseLikes(%q) = %d,%v want %d,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestParseDateDayFirst(t *testing.T) {
	got, ok := ParseDate("03-04-2024", DefaultDateLayouts)
	if !ok {
		t.Fatalf("expected parse")
	}
	want := time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v (day-first)", got, want)
	}
	if _, ok := ParseDate("2024-04-03", DefaultDateLayouts); !ok {
		t.Fatalf("ISO date should parse")
	}
	for _, bad := range []string{"", "31-02-2024", "yesterday", "NaN"} {
		if d, ok := ParseDate(bad, DefaultDateLayouts); ok || !d.IsZero() {
			t.Errorf("ParseDate(%q) = %v,%v; want missing", bad, d, ok)
		}
	}
}

func TestParseClock(t *testing.T) {
	c, ok := ParseClock(" 09:05:07 ", DefaultTimeLayouts)
	if !ok || c.String() != "09:05:07" || c.Seconds() != 9*3600+5*60+7 {
		t.Fatalf("got %q (%d), ok=%v", c.String(), c.Seconds(), ok)
	}
	midnight, ok := ParseClock("00:00:00", DefaultTimeLayouts)
	if !ok || !midnight.Valid() || midnight.Seconds() != 0 {
		t.Fatalf("midnight must be a valid time")
	}
	for _, bad := range []string{"", "25:00:00", "9am", "12:30"} {
		if c, ok := ParseClock(bad, DefaultTimeLayouts); ok || c.Valid() {
			t.Errorf("ParseClock(%q) should be missing", bad)
		}
	}
	var missing Clock
	if missing.Compare(midnight) >= 0 {
		t.Fatalf("missing clock must order before midnight")
	}
}

func TestCanonicalLabel(t *testing.T) {
	cases := []struct {
		in          string
		want        Label
		wantPresent bool
	}{
		{"positive", Positive, true},
		{"  NEGATIVE ", Negative, true},
		{"Neutral", Neutral, true},
		{"mixed", "Mixed", true},
		{"   ", "", false},
		{"", "", false},
		{"nan", "", false},
	}
	for _, c := range cases {
		got, present := CanonicalLabel(c.in)
		if got != c.want || present != c.wantPresent {
			t.Errorf("CanonicalLabel(%q) = %q,%v want %q,%v", c.in, got, present, c.want, c.wantPresent)
		}
	}
}

func TestNormalizeAbsorbsBadFields(t *testing.T) {
	raw := []RawRecord{
		{Line: 2, Username: " alice ", URL: "u1", Date: "01-05-2024", Time: "10:00:00", Captions: "hello", Likes: "1,500"},
		{Line: 3, Username: "alice", URL: "u1", Date: "bad", Time: "10:05:00", Likes: "x", Comments: "great", SentimentLabel: " positive", SentimentScore: "0.98"},
		{Line: 4, Username: "alice", URL: "u1", Date: "02-05-2024", Time: "oops", Comments: "meh", SentimentLabel: "Mixed", SentimentScore: "high"},
		{Line: 5, Username: "alice", URL: "u1", Date: "02-05-2024", Time: "11:00:00", Comments: "?"},
	}
	recs, cc := Normalize(raw, Options{})
	if len(recs) != len(raw) {
		t.Fatalf("rows dropped: %d", len(recs))
	}
	if recs[0].Username != "alice" || !recs[0].HasCaption || recs[0].Likes != 1500 || recs[0].HasComment {
		t.Fatalf("caption row = %#v", recs[0])
	}
	if !recs[1].Date.IsZero() || recs[1].Likes != 0 || recs[1].Label != Positive || !recs[1].HasScore || recs[1].Score != 0.98 {
		t.Fatalf("comment row = %#v", recs[1])
	}
	if recs[2].Time.Valid() || recs[2].HasDateTime() || recs[2].HasScore || recs[2].Label != "Mixed" {
		t.Fatalf("bad time row = %#v", recs[2])
	}
	if recs[3].HasLabel {
		t.Fatalf("absent label must stay absent")
	}
	want := Coercions{Likes: 1, Date: 1, Time: 1, Score: 1, Labels: 1}
	if cc != want {
		t.Fatalf("coercions = %+v, want %+v", cc, want)
	}
}
