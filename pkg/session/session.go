// Package session persists the most recent result view so separate CLI
// invocations (search, then select, then export) can build on each other.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/results"
)

// FileName is the session file inside the data directory.
const FileName = "last_search.json"

const currentVersion = 1

type file struct {
	Version int `json:"version"`
	results.Snapshot
}

// Manager handles session operations
type Manager struct {
	path   string
	logger logger.Logger
}

// NewManager creates a session manager storing its file under dataDir.
func NewManager(dataDir string, log logger.Logger) (*Manager, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Manager{
		path:   filepath.Join(dataDir, FileName),
		logger: logger.OrDefault(log),
	}, nil
}

// Path returns the session file path.
func (m *Manager) Path() string {
	return m.path
}

// Load returns the saved snapshot, or nil if there is none.
func (m *Manager) Load() (*results.Snapshot, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if f.Version > currentVersion {
		return nil, fmt.Errorf("session file version %d is newer than supported version %d", f.Version, currentVersion)
	}

	m.logger.DebugWithFields("Session loaded", map[string]interface{}{
		"profiles": len(f.Profiles),
		"selected": len(f.Selected),
		"saved_at": f.SavedAt,
	})
	return &f.Snapshot, nil
}

// Save writes snap to disk atomically
func (m *Manager) Save(snap results.Snapshot) error {
	tempPath := m.path + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary session file: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(file{Version: currentVersion, Snapshot: snap}); err != nil {
		out.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode session: %w", err)
	}

	// Ensure data is written to disk
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync session file: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tempPath, m.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	m.logger.DebugWithFields("Session saved", map[string]interface{}{
		"profiles": len(snap.Profiles),
		"selected": len(snap.Selected),
	})
	return nil
}

// Update loads the session, applies fn to its view and saves the result.
// It fails when no session exists.
func (m *Manager) Update(fn func(results.View) results.View) (*results.Snapshot, error) {
	snap, err := m.Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoSession
	}

	view := fn(snap.View())
	next := view.Snapshot(snap.Mode, snap.Criteria)
	if err := m.Save(next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes the session file
func (m *Manager) Delete() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Exists checks if a session file exists
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}
