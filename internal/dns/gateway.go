// Package dns defines the provider-facing surface of the console: the
// Gateway interface every zone backend implements, the error sentinels
// handlers translate into HTTP statuses, and zone name helpers.
package dns

import (
	"context"
	"errors"

	"azdns/internal/credstore"
	"azdns/internal/dnstypes"
)

// Error sentinels classified from provider responses. Handlers map them to
// HTTP statuses with errors.Is; anything unrecognized stays a plain 500.
var (
	// ErrNotConfigured is returned before any network call when the zone
	// configuration is missing fields.
	ErrNotConfigured = errors.New("DNS zone configuration is incomplete")

	// ErrAuthFailed covers rejected credentials: bad tenant, client ID or
	// client secret.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrForbidden covers credentials that authenticate but lack permission
	// on the zone.
	ErrForbidden = errors.New("permission denied")

	// ErrZoneNotFound covers a missing resource group or zone.
	ErrZoneNotFound = errors.New("resource group or DNS zone not found")
)

// Gateway is the record-set surface of one DNS zone.
type Gateway interface {
	// List returns every record set in the zone, in provider order.
	List(ctx context.Context) ([]dnstypes.Record, error)

	// Upsert creates or replaces the record set identified by (rtype, name)
	// and returns the resulting record. name is zone-relative, "@" for the
	// apex; FQDNs are accepted and normalized.
	Upsert(ctx context.Context, name string, rtype dnstypes.RecordType, ttl int64, values []string) (dnstypes.Record, error)

	// Delete removes the record set identified by (rtype, name).
	Delete(ctx context.Context, name string, rtype dnstypes.RecordType) error
}

// Factory builds a Gateway from a configuration snapshot. Handlers call it
// once per request, so credential updates take effect immediately and no
// stale client is ever cached.
type Factory func(cfg credstore.Config) (Gateway, error)

// TestConnection builds a throwaway gateway from cfg and lists the zone,
// returning the record set count. The stored configuration is never read
// or modified.
func TestConnection(ctx context.Context, build Factory, cfg credstore.Config) (int, error) {
	gw, err := build(cfg)
	if err != nil {
		return 0, err
	}
	records, err := gw.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
