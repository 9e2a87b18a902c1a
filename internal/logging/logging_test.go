package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupJSONOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	if lvl := Setup("debug", &buf); lvl != zerolog.DebugLevel {
		t.Fatalf("level = %v", lvl)
	}
	log.Debug().Str("source", "posts.csv").Msg("loaded")
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if m["source"] != "posts.csv" || m["message"] != "loaded" || m["level"] != "debug" {
		t.Fatalf("entry = %v", m)
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	if lvl := Setup("chatty", &buf); lvl != zerolog.InfoLevel {
		t.Fatalf("level = %v", lvl)
	}
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at info level: %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("buffer is not a terminal")
	}
}
