package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// FilenamePrefix starts every default export file name.
const FilenamePrefix = "influencers_shortlist_"

// ParseFormat normalizes a format name. Empty input selects CSV.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errs.InvalidArgument("format", "unsupported export format %q", s)
	}
}

// DefaultFilename returns influencers_shortlist_YYYY-MM-DD.<format>.
func DefaultFilename(now time.Time, format string) string {
	return FilenamePrefix + now.Format("2006-01-02") + "." + format
}

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatJSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// Render writes profiles to w in format.
func Render(w io.Writer, format string, profiles []influencer.EnrichedProfile) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if format == FormatJSON {
		return JSON(w, profiles)
	}
	return CSV(w, profiles)
}

// Manager writes export files into a directory
type Manager struct {
	outputDir string
	now       func() time.Time
	mu        sync.Mutex
}

// NewManager creates a new export manager
func NewManager(outputDir string) (*Manager, error) {
	if outputDir == "" {
		outputDir = "."
	}
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Manager{outputDir: outputDir, now: time.Now}, nil
}

// OutputDir returns the output directory path
func (m *Manager) OutputDir() string {
	return m.outputDir
}

// Write renders profiles and stores them atomically. An empty name uses
// DefaultFilename. The path of the written file is returned.
func (m *Manager) Write(name, format string, profiles []influencer.EnrichedProfile) (string, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", errs.InvalidArgument("profiles", "Please select at least one influencer to export")
	}
	if name == "" {
		name = DefaultFilename(m.now(), format)
	}
	if filepath.Base(name) != name {
		return "", errs.InvalidArgument("name", "export name must not contain a path")
	}

	var buf bytes.Buffer
	if err := Render(&buf, format, profiles); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	filename := filepath.Join(m.outputDir, name)

	// Create temporary file first
	tempFile := filename + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	_, err = io.Copy(out, &buf)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to write export data: %w", err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to close file: %w", closeErr)
	}

	// Atomic rename
	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return filename, nil
}
