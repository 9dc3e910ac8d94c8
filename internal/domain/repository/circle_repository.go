package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// CircleRepository persists circles, scoped to an owning user.
type CircleRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Circle, error)
	Create(ctx context.Context, userID int64, c *domain.Circle) (int64, error)
	Update(ctx context.Context, id, userID int64, patch *domain.CirclePatch) error
	Delete(ctx context.Context, id, userID int64) error
	DeleteAll(ctx context.Context, userID int64) error
}
