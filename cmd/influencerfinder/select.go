package main

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
	"influencerfinder/pkg/ui"
)

var (
	selectAll    bool
	selectClear  bool
	selectRemove bool
	resultsSort  string
	resultsOrder string
)

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select [usernames...]",
	Short: "Select influencers from the last search",
	Long: `Mark influencers from the last search for export or a shortlist.

Usernames are matched case-insensitively. Names that are not part of the
last search are ignored.`,
	Example: `  # Select two profiles
  influencerfinder select fitness_emma_fit yoga_with_sara

  # Deselect one again
  influencerfinder select --remove yoga_with_sara

  # Select everything, or nothing
  influencerfinder select --all
  influencerfinder select --clear`,
	RunE: runSelect,
}

// resultsCmd represents the results command
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the results of the last search",
	Long: `Show the results of the last search with the current selection.
Passing --sort-by or --order re-sorts them and remembers the new order.`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(resultsCmd)

	selectCmd.Flags().BoolVarP(&selectAll, "all", "a", false, "select every result")
	selectCmd.Flags().BoolVar(&selectClear, "clear", false, "clear the selection")
	selectCmd.Flags().BoolVarP(&selectRemove, "remove", "r", false, "deselect the given usernames")
	selectCmd.MarkFlagsMutuallyExclusive("all", "clear", "remove")

	resultsCmd.Flags().StringVarP(&resultsSort, "sort-by", "s", "", "field to sort by")
	resultsCmd.Flags().StringVarP(&resultsOrder, "order", "o", "", "sort order: asc or desc")
	resultsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the selected profiles as JSON")
}

func runSelect(cmd *cobra.Command, args []string) error {
	if !selectAll && !selectClear && len(args) == 0 {
		return errs.InvalidArgument("usernames", "Please name at least one influencer, or use --all or --clear")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	var missing []string
	snap, err := a.sessions.Update(func(v results.View) results.View {
		switch {
		case selectAll:
			return v.SelectAll()
		case selectClear:
			return v.ClearSelection()
		case selectRemove:
			return v.Deselect(args...)
		}
		profiles := v.Profiles()
		for _, name := range args {
			if influencer.FindByUsername(profiles, name) < 0 {
				missing = append(missing, name)
			}
		}
		return v.Select(args...)
	})
	if err != nil {
		return err
	}

	for _, name := range missing {
		ui.PrintWarning("Not in the last search", name)
	}
	view := snap.View()
	ui.PrintSuccess(fmt.Sprintf("%d of %d influencers selected", view.SelectedCount(), view.Len()))
	return nil
}

func runResults(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(a)
	if err != nil {
		return err
	}

	view := snap.View()
	if resultsSort != "" || resultsOrder != "" {
		sortBy, order := view.SortBy(), view.Order()
		if resultsSort != "" {
			sortBy = influencer.ParseSortField(resultsSort)
		}
		if resultsOrder != "" {
			order = influencer.ParseOrder(resultsOrder)
		}
		view = view.Resort(sortBy, order)
		if err := a.sessions.Save(view.Snapshot(snap.Mode, snap.Criteria)); err != nil {
			return err
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), view.ExportSet(false))
	}
	ui.PrintResults(cmd.OutOrStdout(), view)
	return nil
}
