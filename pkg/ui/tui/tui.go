// Package tui is the interactive results browser: a table of profiles the
// user can move through, select, re-sort and export.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"influencerfinder/pkg/results"
)

// Run shows v until the user quits and returns the view as they left it,
// so the selection can be saved.
func Run(v results.View, exportFn ExportFunc, opts ...tea.ProgramOption) (results.View, error) {
	model := NewModel(v, exportFn)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	final, err := tea.NewProgram(&model, opts...).Run()
	if err != nil {
		return v, fmt.Errorf("results browser failed: %w", err)
	}
	if m, ok := final.(*Model); ok {
		return m.results, nil
	}
	return model.results, nil
}
