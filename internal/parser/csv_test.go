package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/postpulse/internal/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestReadTableCSV(t *testing.T) {
	p := writeFile(t, "posts.csv", "\ufeffusername,URL,Likes,Comments\n"+
		"alice,https://x.test/alice/p/1,\"1,500\",\n"+
		"alice,https://x.test/alice/p/1,,\"nice, really\"\n"+
		",,,\n"+
		"bob,https://x.test/bob/p/9\n")
	tbl, err := parser.ReadTable(p, parser.Options{})
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if tbl.Name != "posts.csv" {
		t.Fatalf("name = %q", tbl.Name)
	}
	if tbl.Header[0] != "username" {
		t.Fatalf("BOM not stripped from header: %q", tbl.Header[0])
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3 (blank row skipped)", len(tbl.Rows))
	}
	if tbl.Rows[0][2] != "1,500" {
		t.Fatalf("quoted likes = %q", tbl.Rows[0][2])
	}
	if tbl.Rows[1][3] != "nice, really" {
		t.Fatalf("quoted comment = %q", tbl.Rows[1][3])
	}
	if len(tbl.Rows[2]) != 4 || tbl.Rows[2][3] != "" {
		t.Fatalf("short row not padded: %#v", tbl.Rows[2])
	}
	if tbl.Column("url") != 1 || tbl.Column("missing") != -1 {
		t.Fatalf("column lookup failed")
	}
}

func TestReadTableTSV(t *testing.T) {
	p := writeFile(t, "posts.tsv", "username\tLikes\nalice\t1,200\n")
	tbl, err := parser.ReadTable(p, parser.Options{})
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][1] != "1,200" {
		t.Fatalf("rows = %#v", tbl.Rows)
	}
}

func TestReadTableEmptyAndMissing(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	tbl, err := parser.ReadTable(p, parser.Options{})
	if err != nil {
		t.Fatalf("ReadTable empty: %v", err)
	}
	if len(tbl.Header) != 0 || len(tbl.Rows) != 0 {
		t.Fatalf("expected empty table, got %#v", tbl)
	}

	_, err = parser.ReadTable(filepath.Join(t.TempDir(), "nope.csv"), parser.Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadTableDirectory(t *testing.T) {
	_, err := parser.ReadTable(t.TempDir(), parser.Options{})
	if !errors.Is(err, parser.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
