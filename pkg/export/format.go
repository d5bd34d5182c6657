package export

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber renders n with thousands separators: 1234567 -> "1,234,567".
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercentage renders a rate with two decimals: 3.5 -> "3.50%".
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatCompact renders large counts the way Instagram displays them:
// 1500 -> "1.5K", 2300000 -> "2.3M".
func FormatCompact(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
