package format

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestGrouped(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{2000, "2,000"},
		{99999, "99,999"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-1234567, "-12,34,567"},
		{-42, "-42"},
		{math.MinInt64, "-92,23,37,20,36,85,47,75,808"},
		{math.MaxInt64, "92,23,37,20,36,85,47,75,807"},
	}
	for _, c := range cases {
		if got := Grouped(c.in); got != c.want {
			t.Errorf("Grouped(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGroupedRoundTripAndGroupWidths(t *testing.T) {
	values := []int64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 98765432, 1000000000, math.MaxInt64}
	for n := int64(1); n < 1e15; n = n*7 + 3 {
		values = append(values, n)
	}
	for _, n := range values {
		s := Grouped(n)
		back, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
		if err != nil || back != n {
			t.Fatalf("round trip %d -> %q -> %d (%v)", n, s, back, err)
		}
		groups := strings.Split(s, ",")
		if len(groups) == 1 {
			continue
		}
		if len(groups[len(groups)-1]) != 3 {
			t.Fatalf("%q: trailing group must have 3 digits", s)
		}
		for _, g := range groups[1 : len(groups)-1] {
			if len(g) != 2 {
				t.Fatalf("%q: interior group %q must have 2 digits", s, g)
			}
		}
		if l := len(groups[0]); l < 1 || l > 2 {
			t.Fatalf("%q: leading group %q has %d digits", s, groups[0], l)
		}
	}
}

func TestGroupedValueFallback(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "0"},
		{"abc", "0"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
		{"", "0"},
		{"1,500", "1,500"},
		{" 2000 ", "2,000"},
		{1500.9, "1,500"},
		{int(42), "42"},
		{"12.0", "12"},
		{int64(-1500), "-1,500"},
		{uint32(100000), "1,00,000"},
	}
	for _, c := range cases {
		if got := GroupedValue(c.in); got != c.want {
			t.Errorf("GroupedValue(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(200.0 / 3); got != "66.7%" {
		t.Fatalf("Percent = %q", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Fatalf("Percent(0) = %q", got)
	}
}
