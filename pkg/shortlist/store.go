// Package shortlist stores named lists of chosen influencers in SQLite.
package shortlist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
)

// MaxNameLength bounds shortlist names.
const MaxNameLength = 64

// Shortlist is a named, ordered set of profiles together with the search
// that produced them.
type Shortlist struct {
	Name      string                       `json:"name"`
	Mode      string                       `json:"mode"`
	Criteria  influencer.Criteria          `json:"filters"`
	Profiles  []influencer.EnrichedProfile `json:"profiles"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

// Summary describes a shortlist without its profiles.
type Summary struct {
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps the SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shortlist database: %w", err)
	}
	// One connection keeps :memory: databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure shortlist database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate shortlist database: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS shortlists (
	  name TEXT PRIMARY KEY,
	  mode TEXT NOT NULL,
	  criteria TEXT NOT NULL,
	  created_at INTEGER NOT NULL,
	  updated_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS shortlist_members (
	  shortlist TEXT NOT NULL,
	  position INTEGER NOT NULL,
	  username TEXT NOT NULL,
	  profile TEXT NOT NULL,
	  PRIMARY KEY (shortlist, username)
	);
	CREATE INDEX IF NOT EXISTS idx_members_position ON shortlist_members(shortlist, position);
	`)
	return err
}

// ValidateName checks a shortlist name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return errs.InvalidArgument("name", "shortlist name is required")
	case len(name) > MaxNameLength:
		return errs.InvalidArgument("name", "shortlist name must be at most %d characters", MaxNameLength)
	case strings.ContainsAny(name, "/\\"):
		return errs.InvalidArgument("name", "shortlist name must not contain slashes")
	}
	return nil
}

// Save creates or replaces the shortlist named sl.Name. Profiles keep
// their order; duplicate usernames after the first are dropped.
func (s *Store) Save(ctx context.Context, sl Shortlist) error {
	if err := ValidateName(sl.Name); err != nil {
		return err
	}
	name := strings.TrimSpace(sl.Name)

	criteria, err := json.Marshal(sl.Criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}
	now := s.now().UTC().UnixNano()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shortlists(name, mode, criteria, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			mode = excluded.mode,
			criteria = excluded.criteria,
			updated_at = excluded.updated_at`,
		name, sl.Mode, string(criteria), now, now)
	if err != nil {
		return fmt.Errorf("failed to save shortlist: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shortlist_members WHERE shortlist = ?`, name); err != nil {
		return fmt.Errorf("failed to clear shortlist members: %w", err)
	}

	seen := make(map[string]bool, len(sl.Profiles))
	position := 0
	for _, p := range sl.Profiles {
		key := strings.ToLower(strings.TrimSpace(p.Username))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode profile %s: %w", p.Username, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shortlist_members(shortlist, position, username, profile) VALUES(?, ?, ?, ?)`,
			name, position, key, string(data)); err != nil {
			return fmt.Errorf("failed to save shortlist member: %w", err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shortlist: %w", err)
	}
	return nil
}

// List returns every shortlist ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, s.updated_at, COUNT(m.username)
		FROM shortlists s
		LEFT JOIN shortlist_members m ON m.shortlist = s.name
		GROUP BY s.name, s.updated_at
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlists: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var sum Summary
		var updated int64
		if err := rows.Scan(&sum.Name, &updated, &sum.Count); err != nil {
			return nil, fmt.Errorf("failed to scan shortlist: %w", err)
		}
		sum.UpdatedAt = time.Unix(0, updated).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Get returns the shortlist called name.
func (s *Store) Get(ctx context.Context, name string) (*Shortlist, error) {
	name = strings.TrimSpace(name)
	sl := Shortlist{Name: name}

	var criteria string
	var created, updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT mode, criteria, created_at, updated_at FROM shortlists WHERE name = ?`, name,
	).Scan(&sl.Mode, &criteria, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.Newf(errs.ErrorTypeNotFound, "shortlist %q not found", name)
		}
		return nil, fmt.Errorf("failed to get shortlist: %w", err)
	}
	if err := json.Unmarshal([]byte(criteria), &sl.Criteria); err != nil {
		return nil, fmt.Errorf("failed to decode criteria: %w", err)
	}
	sl.CreatedAt = time.Unix(0, created).UTC()
	sl.UpdatedAt = time.Unix(0, updated).UTC()

	rows, err := s.db.QueryContext(ctx,
		`SELECT profile FROM shortlist_members WHERE shortlist = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load shortlist members: %w", err)
	}
	defer rows.Close()

	sl.Profiles = []influencer.EnrichedProfile{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan shortlist member: %w", err)
		}
		var p influencer.EnrichedProfile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to decode shortlist member: %w", err)
		}
		sl.Profiles = append(sl.Profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &sl, nil
}

// Delete removes the shortlist called name.
func (s *Store) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM shortlists WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete shortlist: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.Newf(errs.ErrorTypeNotFound, "shortlist %q not found", name)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM shortlist_members WHERE shortlist = ?`, name); err != nil {
		return fmt.Errorf("failed to delete shortlist members: %w", err)
	}
	return tx.Commit()
}
