package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type circleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCircleRepository(db *DB) repository.CircleRepository {
	return &circleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *circleRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Circle, error) {
	query := `
		SELECT id, user_id, center, radius, "timestamp"
		FROM circles
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list circles", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	circles := make([]*domain.Circle, 0)
	for rows.Next() {
		var c domain.Circle
		var centerJSON []byte
		if err := rows.Scan(&c.ID, &c.UserID, &centerJSON, &c.Radius, &c.Timestamp); err != nil {
			r.logger.Error("Failed to scan circle", zap.Error(err))
			continue
		}

		if err := json.Unmarshal(centerJSON, &c.Center); err != nil {
			r.logger.Warn("Failed to decode circle center", zap.Int64("id", c.ID), zap.Error(err))
			continue
		}
		circles = append(circles, &c)
	}

	return circles, nil
}

func (r *circleRepository) Create(ctx context.Context, userID int64, c *domain.Circle) (int64, error) {
	centerJSON, err := json.Marshal(c.Center)
	if err != nil {
		r.logger.Error("Failed to encode circle center", zap.Error(err))
		return 0, errors.ErrInvalidRequest
	}

	query := `
		INSERT INTO circles (user_id, center, radius, "timestamp")
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, userID, centerJSON, c.Radius, c.Timestamp).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create circle", zap.Int64("user_id", userID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *circleRepository) Update(ctx context.Context, id, userID int64, patch *domain.CirclePatch) error {
	var centerJSON []byte
	if patch.Center != nil {
		encoded, err := json.Marshal(patch.Center)
		if err != nil {
			r.logger.Error("Failed to encode circle center", zap.Error(err))
			return errors.ErrInvalidRequest
		}
		centerJSON = encoded
	}

	ts := time.Now()
	if patch.Timestamp != nil {
		ts = *patch.Timestamp
	}

	query := `
		UPDATE circles SET
			center = COALESCE($1::jsonb, center),
			radius = COALESCE($2, radius),
			"timestamp" = $3
		WHERE id = $4 AND user_id = $5
	`

	if _, err := r.db.ExecContext(ctx, query, centerJSON, patch.Radius, ts, id, userID); err != nil {
		r.logger.Error("Failed to update circle",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *circleRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM circles WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.logger.Error("Failed to delete circle",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *circleRepository) DeleteAll(ctx context.Context, userID int64) error {
	query := `DELETE FROM circles WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete all circles", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
