package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"influencerfinder/pkg/export"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// numericColumns are right-aligned in PrintResults.
var numericColumns = map[int]bool{3: true, 4: true, 5: true, 6: true}

// PrintResults writes v as a table, marking selected rows.
func PrintResults(w io.Writer, v results.View) {
	if v.Len() == 0 {
		fmt.Fprintln(w, Yellow("No influencers match these filters."))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))).
		Headers("", "#", "Username", "Followers", "ER %", "Avg Likes", "Avg Comments", "Country", "Category").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numericColumns[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for i, p := range v.Profiles() {
		mark := " "
		if v.IsSelected(p.Username) {
			mark = "✓"
		}
		t.Row(
			mark,
			fmt.Sprint(i+1),
			"@"+p.Username,
			export.FormatNumber(p.Followers),
			export.FormatPercentage(p.EngagementRate),
			export.FormatNumber(p.AvgLikes),
			export.FormatNumber(p.AvgComments),
			p.Country,
			p.Category,
		)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%s %d results · %d selected · sorted by %s %s\n",
		Dim("•"), v.Len(), v.SelectedCount(), v.SortBy(), v.Order())
}

// PrintProfile writes one profile's engagement breakdown.
func PrintProfile(w io.Writer, p influencer.EnrichedProfile) {
	line := func(label, value string) {
		fmt.Fprintf(w, "  %-16s %s\n", Cyan(label), value)
	}

	name := "@" + p.Username
	if p.IsVerified {
		name += " ✓"
	}
	fmt.Fprintln(w, Magenta(name))
	if p.FullName != "" {
		line("Name", p.FullName)
	}
	line("Followers", export.FormatNumber(p.Followers)+Dim(" ("+export.FormatCompact(p.Followers)+")"))
	line("Engagement", Green(export.FormatPercentage(p.EngagementRate)))
	line("Avg likes", export.FormatNumber(p.AvgLikes))
	line("Avg comments", export.FormatNumber(p.AvgComments))
	line("Posts analyzed", fmt.Sprint(p.PostsAnalyzed))
	if p.Country != "" {
		line("Country", p.Country)
	}
	if p.Category != "" {
		line("Category", p.Category)
	}
	if bio := strings.TrimSpace(p.Biography); bio != "" {
		line("Bio", bio)
	}
	line("Profile", influencer.ProfileURL(p.Username))
}
