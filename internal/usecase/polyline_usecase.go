package usecase

import (
	"context"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type PolylineUseCase struct {
	polylineRepo repository.PolylineRepository
	logger       *zap.Logger
}

func NewPolylineUseCase(polylineRepo repository.PolylineRepository, logger *zap.Logger) *PolylineUseCase {
	return &PolylineUseCase{
		polylineRepo: polylineRepo,
		logger:       logger,
	}
}

func (uc *PolylineUseCase) List(ctx context.Context, userID int64) ([]*domain.Polyline, error) {
	polylines, err := uc.polylineRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list polylines", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return polylines, nil
}

func (uc *PolylineUseCase) Create(ctx context.Context, userID int64, req dto.CreatePolylineRequest) (*dto.CreateResponse, error) {
	polyline := &domain.Polyline{
		Points:    req.Points,
		Timestamp: resolveTimestamp(req.Timestamp),
	}

	id, err := uc.polylineRepo.Create(ctx, userID, polyline)
	if err != nil {
		uc.logger.Error("Failed to create polyline", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.CreateResponse{ID: id}, nil
}

func (uc *PolylineUseCase) Update(ctx context.Context, id, userID int64, req dto.UpdatePolylineRequest) error {
	patch := &domain.PolylinePatch{
		Points: req.Points,
	}
	if req.Timestamp != nil {
		ts := resolveTimestamp(req.Timestamp)
		patch.Timestamp = &ts
	}

	return uc.polylineRepo.Update(ctx, id, userID, patch)
}

func (uc *PolylineUseCase) Delete(ctx context.Context, id, userID int64) error {
	return uc.polylineRepo.Delete(ctx, id, userID)
}

func (uc *PolylineUseCase) DeleteAll(ctx context.Context, userID int64) error {
	return uc.polylineRepo.DeleteAll(ctx, userID)
}
