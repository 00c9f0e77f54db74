package analysis

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{999999999, "999,999,999"},
		{-12345, "-12,345"},
		{1500.4, "1,500"},
		{1499.6, "1,500"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, c := range cases {
		if got := FormatCount(c.in); got != c.want {
			t.Errorf("FormatCount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := FormatCount(math.NaN()); got != "NaN" {
		t.Errorf("FormatCount(NaN) = %q", got)
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "SECTION TITLE")

	rule := strings.Repeat("=", 70)
	want := rule + "\nSECTION TITLE\n" + rule + "\n"
	if buf.String() != want {
		t.Errorf("banner = %q", buf.String())
	}
}
