// Package cache stores previously computed facts records. Lookups are
// case-insensitive on the country name and at most one entry exists
// per country: Store replaces. Whether an entry is fresh enough to
// use is the caller's decision - staleness never deletes anything.
package cache

import (
	"context"

	"github.com/bilgisen/geopulse/internal/models"
)

// Store is the keyed facts cache. Implementations must treat entries
// as immutable value snapshots: a new fetch stores a new record, it
// never mutates an old one in place.
type Store interface {
	// Lookup returns the cached record for the name, or nil when none
	// exists. The lookup is case-insensitive.
	Lookup(ctx context.Context, countryName string) (*models.CountryRecord, error)

	// Store persists the facts portion of a record, replacing any
	// previous entry for the same country name. Implementations strip
	// the live portion themselves; callers may pass the full record.
	Store(ctx context.Context, record models.CountryRecord) error

	Close() error
}
