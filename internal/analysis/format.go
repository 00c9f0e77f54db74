package analysis

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const bannerWidth = 70

// Banner writes a section heading framed by "=" rules.
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

// FormatCount renders v as a comma-grouped whole number. Non-finite values
// render through fmt so they stay visible instead of panicking a cast.
func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.0f", v)
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	return groupDigits(n)
}

func groupDigits(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", groupDigits(n/1000), n%1000)
}
