// Package auth stores RapidAPI credentials outside the config file.
//
// Stores are tried in order: the system keychain, an AES-GCM encrypted
// file under the user's config directory and finally the RAPIDAPI_KEY and
// RAPIDAPI_HOST environment variables, which are read-only.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// DefaultName is the credential profile used when none is given.
const DefaultName = "default"

// Credentials is a named RapidAPI key/host pair.
type Credentials struct {
	Name         string    `json:"name"`
	Key          string    `json:"key"`
	Host         string    `json:"host"`
	LastModified time.Time `json:"last_modified"`
}

// CredentialStore is the interface for storing and retrieving credentials
type CredentialStore interface {
	// Store saves credentials under creds.Name
	Store(creds *Credentials) error

	// Retrieve gets credentials for a profile name
	Retrieve(name string) (*Credentials, error)

	// List returns all stored credentials
	List() ([]*Credentials, error)

	// Delete removes credentials for a profile name
	Delete(name string) error

	// Exists checks if credentials exist for a profile name
	Exists(name string) bool
}

// Manager handles credential storage with fallback mechanisms
type Manager struct {
	stores []CredentialStore
}

// NewManager creates a credential manager whose encrypted file lives in
// dir. An empty dir selects the platform config directory.
func NewManager(dir string) (*Manager, error) {
	var stores []CredentialStore

	if keyringStore, err := NewKeyringStore(); err == nil {
		stores = append(stores, keyringStore)
	}

	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
	}

	encryptedStore, err := NewEncryptedFileStore(filepath.Join(dir, "credentials.enc"))
	if err != nil {
		return nil, fmt.Errorf("failed to create encrypted store: %w", err)
	}
	stores = append(stores, encryptedStore)

	stores = append(stores, NewEnvironmentStore())

	return &Manager{stores: stores}, nil
}

// NewManagerWithStores creates a Manager over the given stores, tried in
// order.
func NewManagerWithStores(stores ...CredentialStore) *Manager {
	return &Manager{stores: stores}
}

// Validate checks that creds can be stored.
func Validate(creds *Credentials) error {
	if creds == nil {
		return ErrInvalidCredentials
	}
	if strings.TrimSpace(creds.Key) == "" {
		return errors.New("API key is required")
	}
	if strings.TrimSpace(creds.Host) == "" {
		return errors.New("API host is required")
	}
	if strings.Contains(creds.Host, "/") {
		return fmt.Errorf("API host must be a bare host name, got %q", creds.Host)
	}
	return nil
}

// Store saves credentials using the first store that accepts them
func (m *Manager) Store(creds *Credentials) error {
	if err := Validate(creds); err != nil {
		return err
	}
	if creds.Name == "" {
		creds.Name = DefaultName
	}
	creds.Key = strings.TrimSpace(creds.Key)
	creds.Host = strings.TrimSpace(creds.Host)
	creds.LastModified = time.Now()

	var lastErr error
	for _, store := range m.stores {
		err := store.Store(creds)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("failed to store credentials: %w", lastErr)
	}
	return errors.New("no available credential stores")
}

// Retrieve gets credentials from the first store that has them
func (m *Manager) Retrieve(name string) (*Credentials, error) {
	if name == "" {
		name = DefaultName
	}
	for _, store := range m.stores {
		if creds, err := store.Retrieve(name); err == nil && creds != nil {
			return creds, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, name)
}

// RetrieveDefault returns the default profile, or the most recently
// modified one when no profile is called "default".
func (m *Manager) RetrieveDefault() (*Credentials, error) {
	if creds, err := m.Retrieve(DefaultName); err == nil {
		return creds, nil
	}

	all, err := m.List()
	if err == nil && len(all) > 0 {
		return all[0], nil
	}

	return nil, ErrCredentialsNotFound
}

// Resolve fills in key and host from stored credentials when either is
// empty. Values already set win.
func (m *Manager) Resolve(key, host string) (string, string) {
	if key != "" && host != "" {
		return key, host
	}
	creds, err := m.RetrieveDefault()
	if err != nil {
		return key, host
	}
	if key == "" {
		key = creds.Key
	}
	if host == "" {
		host = creds.Host
	}
	return key, host
}

// List returns stored credentials from all stores, newest first. When two
// stores hold the same name the most recently modified copy wins.
func (m *Manager) List() ([]*Credentials, error) {
	byName := make(map[string]*Credentials)

	for _, store := range m.stores {
		list, err := store.List()
		if err != nil {
			continue
		}
		for _, creds := range list {
			if existing, ok := byName[creds.Name]; !ok || creds.LastModified.After(existing.LastModified) {
				byName[creds.Name] = creds
			}
		}
	}

	result := make([]*Credentials, 0, len(byName))
	for _, creds := range byName {
		result = append(result, creds)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].LastModified.Equal(result[j].LastModified) {
			return result[i].LastModified.After(result[j].LastModified)
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// Delete removes credentials from every writable store
func (m *Manager) Delete(name string) error {
	if name == "" {
		name = DefaultName
	}

	var deleted bool
	var lastErr error
	for _, store := range m.stores {
		if err := store.Delete(name); err == nil {
			deleted = true
		} else {
			lastErr = err
		}
	}

	if deleted {
		return nil
	}
	if lastErr != nil && !errors.Is(lastErr, ErrCredentialsNotFound) && !errors.Is(lastErr, ErrStoreUnavailable) {
		return fmt.Errorf("failed to delete credentials: %w", lastErr)
	}
	return fmt.Errorf("%w: %s", ErrCredentialsNotFound, name)
}

// ConfigDir returns the per-user configuration directory, creating it.
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "influencerfinder")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "influencerfinder")
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			configDir = filepath.Join(xdgConfig, "influencerfinder")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config", "influencerfinder")
		}
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// Sanitize returns a copy of creds with the key masked
func Sanitize(creds *Credentials) *Credentials {
	if creds == nil {
		return nil
	}
	c := *creds
	c.Key = MaskKey(creds.Key)
	return &c
}

// MaskKey masks all but the first 4 and last 4 characters of a key
func MaskKey(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// Errors
var (
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStoreUnavailable    = errors.New("credential store unavailable")
)
