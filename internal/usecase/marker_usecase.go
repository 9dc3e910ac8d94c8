package usecase

import (
	"context"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/geomark-service/internal/pkg/utils"
	"github.com/geomark-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// Marker defaults applied when the client omits address fields.
const (
	defaultMarkerName  = "Unknown Location"
	defaultPlaceName   = "Unknown"
	defaultFieldAbsent = "Not available"
)

type MarkerUseCase struct {
	markerRepo repository.MarkerRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewMarkerUseCase wires the marker repository and an optional stream
// repository; when present, markers created without address details are
// queued for async reverse-geocode enrichment.
func NewMarkerUseCase(
	markerRepo repository.MarkerRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *MarkerUseCase {
	return &MarkerUseCase{
		markerRepo: markerRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

func (uc *MarkerUseCase) List(ctx context.Context, userID int64) ([]*domain.Marker, error) {
	markers, err := uc.markerRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list markers", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return markers, nil
}

func (uc *MarkerUseCase) Create(ctx context.Context, userID int64, req dto.CreateMarkerRequest) (*dto.CreateResponse, error) {
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	marker := &domain.Marker{
		Name:      orDefault(req.Name, defaultMarkerName),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		City:      orDefault(req.City, defaultPlaceName),
		Country:   orDefault(req.Country, defaultPlaceName),
		Village:   orDefault(req.Village, defaultFieldAbsent),
		State:     orDefault(req.State, defaultFieldAbsent),
		Suburb:    orDefault(req.Suburb, defaultFieldAbsent),
		Road:      orDefault(req.Road, defaultFieldAbsent),
		Timestamp: resolveTimestamp(req.Timestamp),
	}

	id, err := uc.markerRepo.Create(ctx, userID, marker)
	if err != nil {
		uc.logger.Error("Failed to create marker", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	// Markers created without address details are enriched asynchronously.
	// Publishing is best effort: a stream outage must not fail the write.
	if uc.streamRepo != nil && req.City == "" && req.Country == "" {
		event := domain.MarkerCreatedEvent{
			MarkerID:  id,
			UserID:    userID,
			Latitude:  marker.Latitude,
			Longitude: marker.Longitude,
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamMarkerEnrich, event); err != nil {
			uc.logger.Warn("Failed to publish marker enrich event",
				zap.Int64("marker_id", id),
				zap.Error(err))
		}
	}

	return &dto.CreateResponse{ID: id}, nil
}

func (uc *MarkerUseCase) Update(ctx context.Context, id, userID int64, req dto.UpdateMarkerRequest) error {
	if req.Latitude != nil && req.Longitude != nil {
		if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
			return errors.ErrInvalidCoordinates
		}
	}

	patch := &domain.MarkerPatch{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
		Country:   req.Country,
		Village:   req.Village,
		State:     req.State,
		Suburb:    req.Suburb,
		Road:      req.Road,
	}
	if req.Timestamp != nil {
		ts := resolveTimestamp(req.Timestamp)
		patch.Timestamp = &ts
	}

	return uc.markerRepo.Update(ctx, id, userID, patch)
}

func (uc *MarkerUseCase) Delete(ctx context.Context, id, userID int64) error {
	return uc.markerRepo.Delete(ctx, id, userID)
}

func (uc *MarkerUseCase) DeleteAll(ctx context.Context, userID int64) error {
	return uc.markerRepo.DeleteAll(ctx, userID)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
