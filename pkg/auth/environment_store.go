package auth

import (
	"os"
	"time"
)

// Environment variables read by EnvironmentStore.
const (
	EnvKey  = "RAPIDAPI_KEY"
	EnvHost = "RAPIDAPI_HOST"
)

// EnvironmentStore exposes RAPIDAPI_KEY and RAPIDAPI_HOST as the default
// profile. It is read-only.
type EnvironmentStore struct {
	getenv func(string) string
}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{getenv: os.Getenv}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(*Credentials) error {
	return ErrStoreUnavailable
}

// Retrieve returns the environment credentials for the default profile.
func (e *EnvironmentStore) Retrieve(name string) (*Credentials, error) {
	if name != "" && name != DefaultName {
		return nil, ErrCredentialsNotFound
	}

	key, host := e.getenv(EnvKey), e.getenv(EnvHost)
	if key == "" || host == "" {
		return nil, ErrCredentialsNotFound
	}

	return &Credentials{
		Name:         DefaultName,
		Key:          key,
		Host:         host,
		LastModified: time.Time{},
	}, nil
}

// List returns a single entry if the environment variables are set
func (e *EnvironmentStore) List() ([]*Credentials, error) {
	creds, err := e.Retrieve(DefaultName)
	if err != nil {
		return []*Credentials{}, nil
	}
	return []*Credentials{creds}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(string) error {
	return ErrStoreUnavailable
}

// Exists checks if environment credentials exist
func (e *EnvironmentStore) Exists(name string) bool {
	_, err := e.Retrieve(name)
	return err == nil
}
