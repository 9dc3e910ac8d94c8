package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// MarkerRepository persists markers, always scoped to an owning user.
type MarkerRepository interface {
	// ListByUser returns all markers owned by userID in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Marker, error)

	// Create inserts a marker for userID and returns the new id.
	Create(ctx context.Context, userID int64, m *domain.Marker) (int64, error)

	// Update applies non-nil patch fields to the row scoped by id+userID.
	// A foreign or missing id affects zero rows and is not an error.
	Update(ctx context.Context, id, userID int64, patch *domain.MarkerPatch) error

	// Delete removes the row scoped by id+userID; no error if nothing matched.
	Delete(ctx context.Context, id, userID int64) error

	// DeleteAll removes every marker owned by userID.
	DeleteAll(ctx context.Context, userID int64) error
}
