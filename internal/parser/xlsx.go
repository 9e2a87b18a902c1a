package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct{}

func (xlsxReader) CanRead(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Read extracts the rows of one worksheet. The first non-blank row is the
// header. Numeric cells styled with a date or time number format are rendered
// with opt.DateLayout and opt.TimeLayout so they read like text exports.
func (xlsxReader) Read(p string, opt Options) (*Table, error) {
	f, err := excelize.OpenFile(p)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet, err := pickSheet(f.GetSheetList(), opt.SheetName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", baseName(p), err)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", baseName(p), sheet, err)
	}

	cells := &cellRenderer{
		f:          f,
		sheet:      sheet,
		kinds:      map[int]cellKind{},
		epoch:      epoch1900,
		dateLayout: opt.DateLayout,
		timeLayout: opt.TimeLayout,
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil && *props.Date1904 {
		cells.epoch = epoch1904
	}
	if cells.dateLayout == "" {
		cells.dateLayout = DefaultDateLayout
	}
	if cells.timeLayout == "" {
		cells.timeLayout = DefaultTimeLayout
	}

	t := &Table{Name: baseName(p)}
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = cells.render(j+1, i+1, v)
		}
		if t.Header == nil {
			t.Header = rec
			continue
		}
		t.Rows = append(t.Rows, padRow(rec, len(t.Header)))
	}
	return t, nil
}

// pickSheet returns the sheet matching name case-insensitively, or the first
// sheet when name is empty.
func pickSheet(sheets []string, name string) (string, error) {
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found; available sheets: %s", name, strings.Join(sheets, ", "))
}

// Serial day numbers count from these dates in the 1900 and 1904 systems.
var (
	epoch1900 = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
)

// maxSerial is 9999-12-31 in the 1900 system.
const maxSerial = 2958465

type cellKind uint8

const (
	kindNumber cellKind = iota
	kindDate
	kindTime
	kindDateTime
)

// builtinKind classifies the implicit number formats of SpreadsheetML.
func builtinKind(id int) cellKind {
	switch {
	case id >= 14 && id <= 17:
		return kindDate
	case id >= 18 && id <= 21, id >= 45 && id <= 47:
		return kindTime
	case id == 22:
		return kindDateTime
	}
	return kindNumber
}

// formatKind classifies a custom format code by its date and time tokens.
// Quoted literals, escaped characters and bracketed colors or locales are
// ignored; elapsed-time brackets such as [h] count as time.
func formatKind(code string) cellKind {
	var b strings.Builder
	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '"':
			if j := strings.IndexByte(code[i+1:], '"'); j >= 0 {
				i += j + 1
			} else {
				i = len(code)
			}
		case '\\', '_', '*':
			i++
		case '[':
			j := strings.IndexByte(code[i:], ']')
			if j < 0 {
				i = len(code)
				break
			}
			inner := strings.ToLower(code[i+1 : i+j])
			if inner != "" && strings.Trim(inner, "hms") == "" {
				b.WriteString(inner)
			}
			i += j
		default:
			b.WriteByte(c)
		}
	}
	tokens := strings.ToLower(b.String())
	date := strings.ContainsAny(tokens, "yd")
	clock := strings.ContainsAny(tokens, "hs")
	switch {
	case date && clock:
		return kindDateTime
	case date:
		return kindDate
	case clock:
		return kindTime
	}
	return kindNumber
}

// serialTime converts a serial day number to a UTC time rounded to the second.
func serialTime(v float64, epoch time.Time) time.Time {
	days := math.Floor(v)
	secs := math.Round((v - days) * 86400)
	return epoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

// cellRenderer turns raw worksheet values into the text a delimited export of
// the same sheet would carry.
type cellRenderer struct {
	f          *excelize.File
	sheet      string
	kinds      map[int]cellKind // by style index
	epoch      time.Time
	dateLayout string
	timeLayout string
}

// render formats the raw value at the 1-based col and row.
func (c *cellRenderer) render(col, row int, raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return c.serial(c.kindAt(col, row), v, raw)
}

// kindAt looks up the number format of a cell through its style.
func (c *cellRenderer) kindAt(col, row int) cellKind {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return kindNumber
	}
	id, err := c.f.GetCellStyle(c.sheet, ref)
	if err != nil {
		return kindNumber
	}
	if k, ok := c.kinds[id]; ok {
		return k
	}
	k := kindNumber
	if st, err := c.f.GetStyle(id); err == nil && st != nil {
		if st.CustomNumFmt != nil {
			k = formatKind(*st.CustomNumFmt)
		} else {
			k = builtinKind(st.NumFmt)
		}
	}
	c.kinds[id] = k
	return k
}

// serial renders v according to kind; raw is returned for plain numbers and
// values outside the serial range.
func (c *cellRenderer) serial(kind cellKind, v float64, raw string) string {
	if kind == kindNumber || v < 0 || v > maxSerial {
		return raw
	}
	ts := serialTime(v, c.epoch)
	switch kind {
	case kindDate:
		return ts.Format(c.dateLayout)
	case kindTime:
		return ts.Format(c.timeLayout)
	}
	// date-time formats drop whichever half is empty
	switch {
	case v < 1:
		return ts.Format(c.timeLayout)
	case ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0:
		return ts.Format(c.dateLayout)
	}
	return ts.Format(c.dateLayout + " " + c.timeLayout)
}
