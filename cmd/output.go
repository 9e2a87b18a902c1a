package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/postpulse/internal/render"
	"github.com/KaramelBytes/postpulse/internal/utils"
)

// encode renders v for the structured formats. ok is false for text formats,
// which each command renders itself.
func encode(v any, format string) (b []byte, ok bool, err error) {
	switch strings.ToLower(format) {
	case "json":
		b, err = utils.PrettyJSON(v)
		if err == nil {
			b = append(b, '\n')
		}
		return b, true, err
	case "yaml", "yml":
		b, err = utils.YAML(v)
		return b, true, err
	case "", "text", "markdown", "md":
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("unsupported --format: %s (use text|markdown|json|yaml)", format)
	}
}

// emit writes content to outPath atomically when set, otherwise to w.
func emit(w io.Writer, outPath, what string, content []byte) error {
	if outPath == "" {
		_, err := w.Write(content)
		return err
	}
	if err := utils.SafeWriteFile(outPath, content); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(w, "✓ Wrote %s to %s\n", what, outPath)
	return nil
}

// renderText draws terminal output to out, or uncolored to outPath when set.
func renderText(out io.Writer, outPath, what string, draw func(*render.Terminal)) error {
	if outPath == "" {
		draw(render.NewTerminal(out, cfg.Color))
		return nil
	}
	var buf bytes.Buffer
	draw(render.NewTerminal(&buf, "never"))
	return emit(out, outPath, what, buf.Bytes())
}
