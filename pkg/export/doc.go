// Package export renders result lists as CSV or JSON and writes them to
// disk.
//
// CSV output quotes every cell and separates rows with a bare "\n" so
// spreadsheets and the web front end read it the same way:
//
//	mgr, _ := export.NewManager("exports")
//	path, err := mgr.Write("", export.FormatCSV, view.Selected())
//
// Files are written to a temporary name and renamed into place.
package export
