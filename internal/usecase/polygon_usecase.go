package usecase

import (
	"context"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type PolygonUseCase struct {
	polygonRepo repository.PolygonRepository
	logger      *zap.Logger
}

func NewPolygonUseCase(polygonRepo repository.PolygonRepository, logger *zap.Logger) *PolygonUseCase {
	return &PolygonUseCase{
		polygonRepo: polygonRepo,
		logger:      logger,
	}
}

func (uc *PolygonUseCase) List(ctx context.Context, userID int64) ([]*domain.Polygon, error) {
	polygons, err := uc.polygonRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list polygons", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return polygons, nil
}

func (uc *PolygonUseCase) Create(ctx context.Context, userID int64, req dto.CreatePolygonRequest) (*dto.CreateResponse, error) {
	polygon := &domain.Polygon{
		Points:    req.Points,
		Timestamp: resolveTimestamp(req.Timestamp),
	}

	id, err := uc.polygonRepo.Create(ctx, userID, polygon)
	if err != nil {
		uc.logger.Error("Failed to create polygon", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.CreateResponse{ID: id}, nil
}

func (uc *PolygonUseCase) Update(ctx context.Context, id, userID int64, req dto.UpdatePolygonRequest) error {
	patch := &domain.PolygonPatch{
		Points: req.Points,
	}
	if req.Timestamp != nil {
		ts := resolveTimestamp(req.Timestamp)
		patch.Timestamp = &ts
	}

	return uc.polygonRepo.Update(ctx, id, userID, patch)
}

func (uc *PolygonUseCase) Delete(ctx context.Context, id, userID int64) error {
	return uc.polygonRepo.Delete(ctx, id, userID)
}

func (uc *PolygonUseCase) DeleteAll(ctx context.Context, userID int64) error {
	return uc.polygonRepo.DeleteAll(ctx, userID)
}
