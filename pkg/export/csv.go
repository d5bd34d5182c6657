package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"influencerfinder/pkg/influencer"
)

// CSVHeader is the header row of a CSV export.
var CSVHeader = []string{
	"Username",
	"Full Name",
	"Followers",
	"Engagement Rate (%)",
	"Avg Likes",
	"Avg Comments",
	"Country",
	"Category",
	"Instagram URL",
	"Bio",
}

// quote wraps a cell in double quotes, doubling any embedded ones. Every
// cell is quoted, unlike encoding/csv which quotes only when needed.
func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// Row returns the CSV cells for one profile.
func Row(p influencer.EnrichedProfile) []string {
	return []string{
		p.Username,
		p.FullName,
		strconv.FormatInt(p.Followers, 10),
		strconv.FormatFloat(p.EngagementRate, 'f', -1, 64),
		strconv.FormatInt(p.AvgLikes, 10),
		strconv.FormatInt(p.AvgComments, 10),
		p.Country,
		p.Category,
		influencer.ProfileURL(p.Username),
		p.Biography,
	}
}

func line(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ",")
}

// CSV writes profiles as CSV. Rows are separated by "\n" with no trailing
// newline; an empty list writes nothing.
func CSV(w io.Writer, profiles []influencer.EnrichedProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	rows := make([]string, 0, len(profiles)+1)
	rows = append(rows, line(CSVHeader))
	for _, p := range profiles {
		rows = append(rows, line(Row(p)))
	}
	if _, err := io.WriteString(w, strings.Join(rows, "\n")); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// JSON writes profiles as an indented JSON array.
func JSON(w io.Writer, profiles []influencer.EnrichedProfile) error {
	if profiles == nil {
		profiles = []influencer.EnrichedProfile{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profiles); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
