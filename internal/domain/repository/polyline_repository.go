package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// PolylineRepository persists polylines, scoped to an owning user.
type PolylineRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Polyline, error)
	Create(ctx context.Context, userID int64, p *domain.Polyline) (int64, error)
	Update(ctx context.Context, id, userID int64, patch *domain.PolylinePatch) error
	Delete(ctx context.Context, id, userID int64) error
	DeleteAll(ctx context.Context, userID int64) error
}
