package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LookupRecord is one persisted advice lookup: what was asked, what the
// provider reported and what we suggested.
type LookupRecord struct {
	ID           uuid.UUID `json:"id"`
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature_c"`
	Condition    string    `json:"condition"`
	Suggestions  []string  `json:"suggestions"`
	CreatedAt    time.Time `json:"created_at"`
}

// LookupRepository defines the interface for lookup persistence.
// This follows the Dependency Inversion Principle - domain defines the interface
type LookupRepository interface {
	// SaveLookup persists one advice lookup
	SaveLookup(ctx context.Context, rec LookupRecord) error

	// ListRecentLookups retrieves the most recent lookups, newest first
	ListRecentLookups(ctx context.Context, limit int) ([]LookupRecord, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
