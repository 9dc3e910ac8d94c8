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

type CircleUseCase struct {
	circleRepo repository.CircleRepository
	logger     *zap.Logger
}

func NewCircleUseCase(circleRepo repository.CircleRepository, logger *zap.Logger) *CircleUseCase {
	return &CircleUseCase{
		circleRepo: circleRepo,
		logger:     logger,
	}
}

func (uc *CircleUseCase) List(ctx context.Context, userID int64) ([]*domain.Circle, error) {
	circles, err := uc.circleRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list circles", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return circles, nil
}

func (uc *CircleUseCase) Create(ctx context.Context, userID int64, req dto.CreateCircleRequest) (*dto.CreateResponse, error) {
	if !utils.ValidateCoordinates(req.Center.Lat, req.Center.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(*req.Radius) {
		return nil, errors.ErrInvalidRadius
	}

	circle := &domain.Circle{
		Center:    *req.Center,
		Radius:    *req.Radius,
		Timestamp: resolveTimestamp(req.Timestamp),
	}

	id, err := uc.circleRepo.Create(ctx, userID, circle)
	if err != nil {
		uc.logger.Error("Failed to create circle", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.CreateResponse{ID: id}, nil
}

func (uc *CircleUseCase) Update(ctx context.Context, id, userID int64, req dto.UpdateCircleRequest) error {
	if req.Center != nil && !utils.ValidateCoordinates(req.Center.Lat, req.Center.Lng) {
		return errors.ErrInvalidCoordinates
	}
	if req.Radius != nil && !utils.ValidateRadius(*req.Radius) {
		return errors.ErrInvalidRadius
	}

	patch := &domain.CirclePatch{
		Center: req.Center,
		Radius: req.Radius,
	}
	if req.Timestamp != nil {
		ts := resolveTimestamp(req.Timestamp)
		patch.Timestamp = &ts
	}

	return uc.circleRepo.Update(ctx, id, userID, patch)
}

func (uc *CircleUseCase) Delete(ctx context.Context, id, userID int64) error {
	return uc.circleRepo.Delete(ctx, id, userID)
}

func (uc *CircleUseCase) DeleteAll(ctx context.Context, userID int64) error {
	return uc.circleRepo.DeleteAll(ctx, userID)
}
