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

type markerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewMarkerRepository(db *DB) repository.MarkerRepository {
	return &markerRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *markerRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Marker, error) {
	query := `
		SELECT id, user_id, name, latitude, longitude,
		       city, country, village, state, suburb, road, "timestamp"
		FROM markers
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list markers", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	markers := make([]*domain.Marker, 0)
	for rows.Next() {
		var m domain.Marker
		err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Latitude, &m.Longitude,
			&m.City, &m.Country, &m.Village, &m.State, &m.Suburb, &m.Road, &m.Timestamp,
		)
		if err != nil {
			r.logger.Error("Failed to scan marker", zap.Error(err))
			continue
		}
		markers = append(markers, &m)
	}

	return markers, nil
}

func (r *markerRepository) Create(ctx context.Context, userID int64, m *domain.Marker) (int64, error) {
	query := `
		INSERT INTO markers (user_id, name, latitude, longitude,
		                     city, country, village, state, suburb, road, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		userID, m.Name, m.Latitude, m.Longitude,
		m.City, m.Country, m.Village, m.State, m.Suburb, m.Road, m.Timestamp,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create marker", zap.Int64("user_id", userID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *markerRepository) Update(ctx context.Context, id, userID int64, patch *domain.MarkerPatch) error {
	// Fixed statement with COALESCE semantics: nil patch fields keep the
	// stored value. The timestamp is always refreshed.
	ts := time.Now()
	if patch.Timestamp != nil {
		ts = *patch.Timestamp
	}

	query := `
		UPDATE markers SET
			name      = COALESCE($1, name),
			latitude  = COALESCE($2, latitude),
			longitude = COALESCE($3, longitude),
			city      = COALESCE($4, city),
			country   = COALESCE($5, country),
			village   = COALESCE($6, village),
			state     = COALESCE($7, state),
			suburb    = COALESCE($8, suburb),
			road      = COALESCE($9, road),
			"timestamp" = $10
		WHERE id = $11 AND user_id = $12
	`

	_, err := r.db.ExecContext(ctx, query,
		patch.Name, patch.Latitude, patch.Longitude,
		patch.City, patch.Country, patch.Village, patch.State, patch.Suburb, patch.Road,
		ts, id, userID,
	)
	if err != nil {
		r.logger.Error("Failed to update marker",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	// Zero rows affected means the id belongs to another user or does not
	// exist; both are reported as success so row existence is never revealed.
	return nil
}

func (r *markerRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM markers WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.logger.Error("Failed to delete marker",
			zap.Int64("id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *markerRepository) DeleteAll(ctx context.Context, userID int64) error {
	query := `DELETE FROM markers WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete all markers", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
