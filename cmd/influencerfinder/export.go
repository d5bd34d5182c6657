package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"influencerfinder/pkg/export"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
	"influencerfinder/pkg/session"
	"influencerfinder/pkg/ui"
	"influencerfinder/pkg/ui/tui"
)

var (
	exportFormat string
	exportAll    bool
	exportName   string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export selected influencers to CSV or JSON",
	Long: `Write the selected influencers of the last search to a file.

Without a selection every result is exported. The default file name is
influencers_shortlist_YYYY-MM-DD.<format> in the export directory.`,
	Example: `  influencerfinder export
  influencerfinder export --format json --output ./exports
  influencerfinder export --all --name fitness.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the last search interactively",
	Long: `Open the results of the last search in an interactive table.

Keys: up/down move, space toggles a profile, a selects all, c clears,
s cycles the sort field, o flips the order, e exports, q quits.
The selection is kept when you quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(browseCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatCSV, "export format: csv or json")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "directory to write to (default current directory)")
	exportCmd.Flags().BoolVarP(&exportAll, "all", "a", false, "export every result, ignoring the selection")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "file name inside the output directory")

	browseCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatCSV, "format used by the export key")
	browseCmd.Flags().StringVar(&exportOutput, "output", "", "directory the export key writes to")
}

func loadSnapshot(a *app) (*results.Snapshot, error) {
	snap, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, session.ErrNoSession
	}
	return snap, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
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

	manager, err := export.NewManager(a.cfg.Storage.ExportDir)
	if err != nil {
		return err
	}

	profiles := snap.View().ExportSet(exportAll)
	path, err := manager.Write(exportName, format, profiles)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Exported %d influencers to %s", len(profiles), path))
	return nil
}

// exporter adapts an export.Manager to the browser's export key.
func exporter(manager *export.Manager, format string) tui.ExportFunc {
	return func(profiles []influencer.EnrichedProfile) (string, error) {
		return manager.Write("", format, profiles)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
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

	manager, err := export.NewManager(a.cfg.Storage.ExportDir)
	if err != nil {
		return err
	}

	view, err := tui.Run(snap.View(), exporter(manager, format))
	if err != nil {
		return err
	}
	return a.sessions.Save(view.Snapshot(snap.Mode, snap.Criteria))
}
