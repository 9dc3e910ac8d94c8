package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/usecase"
	"github.com/geomark-service/internal/usecase/dto"
)

func TestPolylineUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	points := domain.PointList{
		{Lat: 41.3851, Lng: 2.1734},
		{Lat: 41.4036, Lng: 2.1744},
	}

	t.Run("preserves vertex order", func(t *testing.T) {
		mockPolylines := &MockPolylineRepository{}
		uc := usecase.NewPolylineUseCase(mockPolylines, logger)

		mockPolylines.On("Create", ctx, int64(1), mock.MatchedBy(func(p *domain.Polyline) bool {
			return len(p.Points) == 2 &&
				p.Points[0] == points[0] &&
				p.Points[1] == points[1]
		})).Return(int64(8), nil)

		resp, err := uc.Create(ctx, 1, dto.CreatePolylineRequest{Points: points})

		assert.NoError(t, err)
		assert.Equal(t, int64(8), resp.ID)
	})

	t.Run("single vertex is accepted", func(t *testing.T) {
		mockPolylines := &MockPolylineRepository{}
		uc := usecase.NewPolylineUseCase(mockPolylines, logger)

		mockPolylines.On("Create", ctx, int64(1), mock.Anything).Return(int64(9), nil)

		_, err := uc.Create(ctx, 1, dto.CreatePolylineRequest{
			Points: domain.PointList{{Lat: 41.3851, Lng: 2.1734}},
		})

		assert.NoError(t, err)
	})
}

func TestPolylineUseCase_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("nil points leaves the stored vertices untouched", func(t *testing.T) {
		mockPolylines := &MockPolylineRepository{}
		uc := usecase.NewPolylineUseCase(mockPolylines, logger)

		mockPolylines.On("Update", ctx, int64(2), int64(1), mock.MatchedBy(func(p *domain.PolylinePatch) bool {
			return p.Points == nil && p.Timestamp != nil
		})).Return(nil)

		err := uc.Update(ctx, 2, 1, dto.UpdatePolylineRequest{
			Timestamp: ptrString("2026-08-15T10:30:00Z"),
		})

		assert.NoError(t, err)
		mockPolylines.AssertExpectations(t)
	})
}
