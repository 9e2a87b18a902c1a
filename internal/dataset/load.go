package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/postpulse/internal/parser"
)

// ErrDataUnavailable means the source is missing, unreadable, lacks a
// required column, or has no data rows. It is fatal for the session.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Column names of the export, matched case-insensitively.
const (
	ColUsername       = "username"
	ColURL            = "URL"
	ColDate           = "Date"
	ColTime           = "Time"
	ColCaptions       = "Captions"
	ColLikes          = "Likes"
	ColComments       = "Comments"
	ColSentimentLabel = "Sentiment_Label"
	ColSentimentScore = "Sentiment_Score"
)

var requiredColumns = []string{ColUsername, ColURL, ColDate, ColTime}

// Dataset is the loaded, normalized snapshot of one source. It is never
// mutated after Load returns and may be shared between readers.
type Dataset struct {
	Name      string
	Records   []Record
	Coercions Coercions
}

// LoadOptions bundles source reading and field coercion settings.
type LoadOptions struct {
	Source    parser.Options
	Normalize Options
}

// Load reads and normalizes the source at path. Typed spreadsheet dates and
// times are rendered with the first configured layout so they parse back.
func Load(path string, opt LoadOptions) (*Dataset, error) {
	src := opt.Source
	if src.DateLayout == "" && len(opt.Normalize.DateLayouts) > 0 {
		src.DateLayout = opt.Normalize.DateLayouts[0]
	}
	if src.TimeLayout == "" && len(opt.Normalize.TimeLayouts) > 0 {
		src.TimeLayout = opt.Normalize.TimeLayouts[0]
	}
	tbl, err := parser.ReadTable(path, src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: source %s not found", ErrDataUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return FromTable(tbl, opt.Normalize)
}

// FromTable maps table columns onto records and normalizes them.
func FromTable(tbl *parser.Table, opt Options) (*Dataset, error) {
	if tbl == nil || len(tbl.Header) == 0 {
		return nil, fmt.Errorf("%w: source is empty", ErrDataUnavailable)
	}
	for _, name := range requiredColumns {
		if tbl.Column(name) < 0 {
			return nil, fmt.Errorf("%w: %s has no %q column", ErrDataUnavailable, tbl.Name, name)
		}
	}
	if len(tbl.Rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrDataUnavailable, tbl.Name)
	}

	idx := func(name string) int { return tbl.Column(name) }
	cUser, cURL, cDate, cTime := idx(ColUsername), idx(ColURL), idx(ColDate), idx(ColTime)
	cCap, cLikes, cCom := idx(ColCaptions), idx(ColLikes), idx(ColComments)
	cLabel, cScore := idx(ColSentimentLabel), idx(ColSentimentScore)
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	raw := make([]RawRecord, len(tbl.Rows))
	for i, row := range tbl.Rows {
		raw[i] = RawRecord{
			Line:           i + 2,
			Username:       cell(row, cUser),
			URL:            cell(row, cURL),
			Date:           cell(row, cDate),
			Time:           cell(row, cTime),
			Captions:       cell(row, cCap),
			Likes:          cell(row, cLikes),
			Comments:       cell(row, cCom),
			SentimentLabel: cell(row, cLabel),
			SentimentScore: cell(row, cScore),
		}
	}
	records, cc := Normalize(raw, opt)
	if cc.Total() > 0 {
		log.Debug().Str("source", tbl.Name).
			Int("likes", cc.Likes).Int("date", cc.Date).Int("times", cc.Time).
			Int("score", cc.Score).Int("labels", cc.Labels).
			Msg("coerced malformed fields to defaults")
	}
	return &Dataset{Name: tbl.Name, Records: records, Coercions: cc}, nil
}
