package heuristics

import (
	"math"
	"strconv"
	"strings"

	errs "influencerfinder/pkg/errors"
)

// ParseCount parses follower and like counts as displayed by Instagram:
// "4,500", "1.2K", "3M" or "2.5B".
func ParseCount(text string) (int64, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(text), ",", ""))
	if s == "" {
		return 0, errs.New(errs.ErrorTypeParsing, "empty count")
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1e3
	case strings.HasSuffix(s, "M"):
		multiplier = 1e6
	case strings.HasSuffix(s, "B"):
		multiplier = 1e9
	}
	if multiplier != 1 {
		s = strings.TrimSpace(s[:len(s)-1])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errs.Newf(errs.ErrorTypeParsing, "invalid count %q", text)
	}
	return int64(math.Round(v * multiplier)), nil
}
