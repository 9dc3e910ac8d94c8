package postgres

import (
	"context"
	"time"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type polygonRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPolygonRepository(db *DB) repository.PolygonRepository {
	return &polygonRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *polygonRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Polygon, error) {
	query := `
		SELECT id, user_id, points, "timestamp"
		FROM polygons
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list polygons", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	polygons := make([]*domain.Polygon, 0)
	for rows.Next() {
		var p domain.Polygon
		var pointsJSON []byte
		if err := rows.Scan(&p.ID, &p.UserID, &pointsJSON, &p.Timestamp); err != nil {
			r.logger.Error("Failed to scan polygon", zap.Error(err))
			continue
		}

		points, err := domain.DecodePoints(pointsJSON)
		if err != nil {
			r.logger.Warn("Failed to decode polygon points", zap.Int64("id", p.ID), zap.Error(err))
			continue
		}
		p.Points = points
		polygons = append(polygons, &p)
	}

	return polygons, nil
}

func (r *polygonRepository) Create(ctx context.Context, userID int64, p *domain.Polygon) (int64, error) {
	pointsJSON, err := p.Points.Encode()
	if err != nil {
		r.logger.Error("Failed to encode polygon points", zap.Error(err))
		return 0, errors.ErrInvalidRequest
	}

	query := `
		INSERT INTO polygons (user_id, points, "timestamp")
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, userID, pointsJSON, p.Timestamp).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create polygon", zap.Int64("user_id", userID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *polygonRepository) Update(ctx context.Context, id, userID int64, patch *domain.PolygonPatch) error {
	var pointsJSON []byte
	if patch.Points != nil {
		encoded, err := patch.Points.Encode()
		if err != nil {
			r.logger.Error("Failed to encode polygon points", zap.Error(err))
			return errors.ErrInvalidRequest
		}
		pointsJSON = encoded
	}

	ts := time.Now()
	if patch.Timestamp != nil {
		ts = *patch.Timestamp
	}

	query := `
		UPDATE polygons SET
			points = COALESCE($1::jsonb, points),
			"timestamp" = $2
		WHERE id = $3 AND user_id = $4
	`

	if _, err := r.db.ExecContext(ctx, query, pointsJSON, ts, id, userID); err != nil {
		r.logger.Error("Failed to update polygon",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *polygonRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM polygons WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.logger.Error("Failed to delete polygon",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *polygonRepository) DeleteAll(ctx context.Context, userID int64) error {
	query := `DELETE FROM polygons WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete all polygons", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
