package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"influencerfinder/pkg/export"
	"influencerfinder/pkg/results"
	"influencerfinder/pkg/shortlist"
	"influencerfinder/pkg/ui"
)

var shortlistAll bool

// shortlistCmd represents the shortlist command
var shortlistCmd = &cobra.Command{
	Use:     "shortlist",
	Aliases: []string{"shortlists"},
	Short:   "Manage saved shortlists",
	Long: `Save, list, show and delete named shortlists.

Shortlists are stored in a SQLite database in the data directory and are
shared with the HTTP API.`,
}

var shortlistSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the selection of the last search as a shortlist",
	Long: `Save the selected influencers of the last search under a name.
Without a selection, or with --all, every result is saved. Saving under an
existing name replaces its profiles.`,
	Args: cobra.ExactArgs(1),
	RunE: runShortlistSave,
}

var shortlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved shortlists",
	Args:  cobra.NoArgs,
	RunE:  runShortlistList,
}

var shortlistShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the profiles of a shortlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runShortlistShow,
}

var shortlistDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a shortlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runShortlistDelete,
}

func init() {
	rootCmd.AddCommand(shortlistCmd)
	shortlistCmd.AddCommand(shortlistSaveCmd)
	shortlistCmd.AddCommand(shortlistListCmd)
	shortlistCmd.AddCommand(shortlistShowCmd)
	shortlistCmd.AddCommand(shortlistDeleteCmd)

	shortlistCmd.PersistentFlags().StringVar(&shortlistDB, "db", "", "shortlist database path")
	shortlistSaveCmd.Flags().BoolVarP(&shortlistAll, "all", "a", false, "save every result, ignoring the selection")
	shortlistListCmd.Flags().BoolVar(&jsonOutput, "json", false, "print shortlists as JSON")
	shortlistShowCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the shortlist as JSON")
}

func runShortlistSave(cmd *cobra.Command, args []string) error {
	if err := shortlist.ValidateName(args[0]); err != nil {
		return err
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(a)
	if err != nil {
		return err
	}
	return saveShortlist(cmd, a, args[0], snap.Mode, snap.Criteria, snap.View().ExportSet(shortlistAll))
}

func withShortlists(fn func(a *app, store *shortlist.Store) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	store, err := a.openShortlists()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(a, store)
}

func runShortlistList(cmd *cobra.Command, args []string) error {
	return withShortlists(func(a *app, store *shortlist.Store) error {
		lists, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, lists)
		}
		if len(lists) == 0 {
			fmt.Fprintln(out, "No shortlists saved yet. Create one with 'influencerfinder shortlist save <name>'.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPROFILES\tUPDATED")
		for _, l := range lists {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Name, export.FormatNumber(int64(l.Count)), l.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	})
}

func runShortlistShow(cmd *cobra.Command, args []string) error {
	return withShortlists(func(a *app, store *shortlist.Store) error {
		sl, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, sl)
		}
		ui.PrintInfo("Shortlist", sl.Name)
		ui.PrintInfo("Mode", sl.Mode)
		if sl.Criteria.Industry != "" {
			ui.PrintInfo("Industry", sl.Criteria.Industry)
		}
		ui.PrintInfo("Updated", sl.UpdatedAt.Local().Format("2006-01-02 15:04"))
		ui.PrintResults(out, results.NewView(sl.Profiles, "", ""))
		return nil
	})
}

func runShortlistDelete(cmd *cobra.Command, args []string) error {
	return withShortlists(func(a *app, store *shortlist.Store) error {
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Deleted shortlist %q", args[0]))
		return nil
	})
}
