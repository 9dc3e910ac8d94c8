package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// PolygonRepository persists polygon rings, scoped to an owning user.
type PolygonRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Polygon, error)
	Create(ctx context.Context, userID int64, p *domain.Polygon) (int64, error)
	Update(ctx context.Context, id, userID int64, patch *domain.PolygonPatch) error
	Delete(ctx context.Context, id, userID int64) error
	DeleteAll(ctx context.Context, userID int64) error
}
