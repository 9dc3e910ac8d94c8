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

type polylineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPolylineRepository(db *DB) repository.PolylineRepository {
	return &polylineRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *polylineRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Polyline, error) {
	query := `
		SELECT id, user_id, points, "timestamp"
		FROM polylines
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list polylines", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	polylines := make([]*domain.Polyline, 0)
	for rows.Next() {
		var p domain.Polyline
		var pointsJSON []byte
		if err := rows.Scan(&p.ID, &p.UserID, &pointsJSON, &p.Timestamp); err != nil {
			r.logger.Error("Failed to scan polyline", zap.Error(err))
			continue
		}

		points, err := domain.DecodePoints(pointsJSON)
		if err != nil {
			r.logger.Warn("Failed to decode polyline points", zap.Int64("id", p.ID), zap.Error(err))
			continue
		}
		p.Points = points
		polylines = append(polylines, &p)
	}

	return polylines, nil
}

func (r *polylineRepository) Create(ctx context.Context, userID int64, p *domain.Polyline) (int64, error) {
	pointsJSON, err := p.Points.Encode()
	if err != nil {
		r.logger.Error("Failed to encode polyline points", zap.Error(err))
		return 0, errors.ErrInvalidRequest
	}

	query := `
		INSERT INTO polylines (user_id, points, "timestamp")
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, userID, pointsJSON, p.Timestamp).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create polyline", zap.Int64("user_id", userID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *polylineRepository) Update(ctx context.Context, id, userID int64, patch *domain.PolylinePatch) error {
	var pointsJSON []byte
	if patch.Points != nil {
		encoded, err := patch.Points.Encode()
		if err != nil {
			r.logger.Error("Failed to encode polyline points", zap.Error(err))
			return errors.ErrInvalidRequest
		}
		pointsJSON = encoded
	}

	ts := time.Now()
	if patch.Timestamp != nil {
		ts = *patch.Timestamp
	}

	query := `
		UPDATE polylines SET
			points = COALESCE($1::jsonb, points),
			"timestamp" = $2
		WHERE id = $3 AND user_id = $4
	`

	if _, err := r.db.ExecContext(ctx, query, pointsJSON, ts, id, userID); err != nil {
		r.logger.Error("Failed to update polyline",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *polylineRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM polylines WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.logger.Error("Failed to delete polyline",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *polylineRepository) DeleteAll(ctx context.Context, userID int64) error {
	query := `DELETE FROM polylines WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete all polylines", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
