package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table is a header row plus the data rows of one tabular source. Every row is
// padded to the header width.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Options controls how a source is read.
type Options struct {
	// Delimiter for CSV. If 0, inferred from the file extension.
	Delimiter rune
	// SheetName selects an XLSX sheet by name; the first sheet is used otherwise.
	SheetName string
	// DateLayout and TimeLayout render XLSX cells stored as date or time
	// serials. Empty values fall back to DefaultDateLayout and DefaultTimeLayout.
	DateLayout string
	TimeLayout string
}

// Layouts used for XLSX date and time cells when Options leaves them empty.
const (
	DefaultDateLayout = "02-01-2006"
	DefaultTimeLayout = "15:04:05"
)

// Reader defines a tabular source implementation.
type Reader interface {
	CanRead(filename string) bool
	Read(path string, opt Options) (*Table, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// ReadTable selects a reader based on filename and returns the parsed table.
// Files with an unknown extension are read as CSV.
func ReadTable(path string, opt Options) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrUnsupported)
	}
	for _, r := range registry {
		if r.CanRead(path) {
			return r.Read(path, opt)
		}
	}
	return csvReader{}.Read(path, opt)
}

// Column returns the index of the named header column (case-insensitive,
// surrounding whitespace ignored), or -1.
func (t *Table) Column(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range t.Header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

func padRow(rec []string, width int) []string {
	row := make([]string, width)
	copy(row, rec)
	return row
}

func baseName(path string) string { return filepath.Base(path) }

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}

// ErrUnsupported indicates a source format is not supported.
var ErrUnsupported = errors.New("unsupported source format")
