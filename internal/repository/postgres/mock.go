package postgres

import (
	"context"
	"sort"
	"sync"

	"github.com/weathermate/backend/internal/domain"
)

// MockRepository implements domain.LookupRepository for testing/demo mode.
// Records are kept in memory only.
type MockRepository struct {
	mu      sync.Mutex
	records []domain.LookupRecord
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveLookup stores the record in memory
func (r *MockRepository) SaveLookup(ctx context.Context, rec domain.LookupRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// ListRecentLookups returns stored records, newest first
func (r *MockRepository) ListRecentLookups(ctx context.Context, limit int) ([]domain.LookupRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.LookupRecord, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
