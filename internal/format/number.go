package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// indian groups digits the en-IN way: a trailing group of three, then pairs.
var indian = message.NewPrinter(language.MustParse("en-IN"))

// Grouped renders n with a 3-digit trailing group and 2-digit interior groups,
// e.g. 1234567 -> "12,34,567". The sign is preserved.
func Grouped(n int64) string {
	if n < 0 {
		return "-" + indian.Sprintf("%d", uint64(-(n+1))+1)
	}
	return indian.Sprintf("%d", n)
}

// GroupedValue formats any count type as Grouped does. Values that cannot be
// read as an integer (nil, NaN, non-numeric text) render as "0"; floats
// truncate toward zero.
func GroupedValue(v any) string {
	n, ok := toInt64(v)
	if !ok {
		return "0"
	}
	return Grouped(n)
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint32:
		return int64(x), true
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", "")
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case fmt.Stringer:
		return toInt64(x.String())
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Percent renders a percentage with one decimal place, e.g. "66.7%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
