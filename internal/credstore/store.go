// Package credstore owns the Azure credential and zone configuration that
// every DNS operation is built from. The live copy lives in memory behind a
// RWMutex; successful updates are mirrored to an env file so they survive
// restarts.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variable names for the six configuration fields.
const (
	EnvTenantID       = "AZURE_TENANT_ID"
	EnvClientID       = "AZURE_CLIENT_ID"
	EnvClientSecret   = "AZURE_CLIENT_SECRET"
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvResourceGroup  = "AZURE_RESOURCE_GROUP"
	EnvZone           = "AZURE_DNS_ZONE"
)

// ErrPersistence marks an update that reached memory but could not be
// written to the env file. The in-memory snapshot is not rolled back; the
// next successful update rewrites the file.
var ErrPersistence = errors.New("configuration not persisted")

// Config holds the service principal credentials and zone coordinates for
// one Azure DNS zone.
type Config struct {
	TenantID       string
	ClientID       string
	ClientSecret   string
	SubscriptionID string
	ResourceGroup  string
	Zone           string
}

// FromEnv reads all six fields from the process environment.
func FromEnv() Config {
	return Config{
		TenantID:       os.Getenv(EnvTenantID),
		ClientID:       os.Getenv(EnvClientID),
		ClientSecret:   os.Getenv(EnvClientSecret),
		SubscriptionID: os.Getenv(EnvSubscriptionID),
		ResourceGroup:  os.Getenv(EnvResourceGroup),
		Zone:           os.Getenv(EnvZone),
	}
}

// Complete reports whether every field is non-empty.
func (c Config) Complete() bool {
	return len(c.MissingFields()) == 0
}

// MissingFields returns the env-style names of empty fields, in a fixed
// order, for warnings and validation messages.
func (c Config) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		key   string
		value string
	}{
		{EnvTenantID, c.TenantID},
		{EnvClientID, c.ClientID},
		{EnvClientSecret, c.ClientSecret},
		{EnvSubscriptionID, c.SubscriptionID},
		{EnvResourceGroup, c.ResourceGroup},
		{EnvZone, c.Zone},
	} {
		if f.value == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// envMap returns the six fields keyed by their env variable names.
func (c Config) envMap() map[string]string {
	return map[string]string{
		EnvTenantID:       c.TenantID,
		EnvClientID:       c.ClientID,
		EnvClientSecret:   c.ClientSecret,
		EnvSubscriptionID: c.SubscriptionID,
		EnvResourceGroup:  c.ResourceGroup,
		EnvZone:           c.Zone,
	}
}

// Store is the single owner of the live configuration.
//
// Readers always see a full snapshot: Update swaps the whole Config under
// the write lock, so no request can observe half of an update. The env file
// write happens under the same lock, which keeps concurrent updates from
// interleaving their memory and file effects.
type Store struct {
	mu   sync.RWMutex
	cfg  Config
	path string
}

// New returns an empty Store that mirrors updates to the env file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load seeds the process environment from the env file at path (a missing
// file is fine, real environment variables win over file entries) and
// returns a Store holding whatever the environment provides.
func Load(path string) *Store {
	_ = godotenv.Load(path)
	s := New(path)
	s.cfg = FromEnv()
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// IsComplete reports whether the current snapshot has all six fields set.
func (s *Store) IsComplete() bool {
	return s.Get().Complete()
}

// Update replaces the snapshot and mirrors it to the env file. Keys in the
// file other than the six owned ones are preserved. When the file write
// fails the new snapshot stays live and the returned error wraps
// ErrPersistence.
func (s *Store) Update(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg

	vars, err := godotenv.Read(s.path)
	if err != nil {
		// No existing file (or unreadable): start from the six keys alone.
		vars = map[string]string{}
	}
	for k, v := range cfg.envMap() {
		vars[k] = v
	}
	if err := godotenv.Write(vars, s.path); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}
