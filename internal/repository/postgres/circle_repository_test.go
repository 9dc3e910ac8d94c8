package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/repository/postgres"
	"github.com/geomark-service/internal/repository/postgres/testhelpers"
)

type CircleRepositoryTestSuite struct {
	suite.Suite
	testDB  *testhelpers.TestDB
	repo    repository.CircleRepository
	ctx     context.Context
	userID  int64
	otherID int64
}

func (s *CircleRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	_ = testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations")

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.repo = postgres.NewCircleRepository(db)
}

func (s *CircleRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *CircleRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")

	s.userID, err = testhelpers.CreateTestUser(s.testDB.DB, "owner@example.com")
	s.NoError(err)
	s.otherID, err = testhelpers.CreateTestUser(s.testDB.DB, "other@example.com")
	s.NoError(err)
}

func (s *CircleRepositoryTestSuite) TestCreateAndList_RoundTripsCenter() {
	center := domain.Point{Lat: 41.3851, Lng: 2.1734}

	id, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center:    center,
		Radius:    500,
		Timestamp: time.Now(),
	})
	s.NoError(err)
	s.Greater(id, int64(0))

	circles, err := s.repo.ListByUser(s.ctx, s.userID)

	s.NoError(err)
	s.Require().Len(circles, 1)
	s.Equal(center, circles[0].Center)
	s.Equal(500.0, circles[0].Radius)
}

func (s *CircleRepositoryTestSuite) TestList_ScopedToOwner() {
	_, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center: domain.Point{Lat: 41.3851, Lng: 2.1734}, Radius: 500, Timestamp: time.Now(),
	})
	s.NoError(err)
	_, err = s.repo.Create(s.ctx, s.otherID, &domain.Circle{
		Center: domain.Point{Lat: 40.4168, Lng: -3.7038}, Radius: 900, Timestamp: time.Now(),
	})
	s.NoError(err)

	circles, err := s.repo.ListByUser(s.ctx, s.userID)

	s.NoError(err)
	s.Require().Len(circles, 1)
	s.Equal(500.0, circles[0].Radius)
	s.Equal(s.userID, circles[0].UserID)
}

func (s *CircleRepositoryTestSuite) TestUpdate_RadiusOnlyKeepsCenter() {
	center := domain.Point{Lat: 41.3851, Lng: 2.1734}
	id, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center: center, Radius: 500, Timestamp: time.Now(),
	})
	s.NoError(err)

	radius := 750.0
	err = s.repo.Update(s.ctx, id, s.userID, &domain.CirclePatch{Radius: &radius})
	s.NoError(err)

	circles, err := s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.Require().Len(circles, 1)
	s.Equal(center, circles[0].Center)
	s.Equal(750.0, circles[0].Radius)
}

func (s *CircleRepositoryTestSuite) TestUpdate_CenterOnlyKeepsRadius() {
	id, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center: domain.Point{Lat: 41.3851, Lng: 2.1734}, Radius: 500, Timestamp: time.Now(),
	})
	s.NoError(err)

	newCenter := domain.Point{Lat: 40.4168, Lng: -3.7038}
	err = s.repo.Update(s.ctx, id, s.userID, &domain.CirclePatch{Center: &newCenter})
	s.NoError(err)

	circles, err := s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.Require().Len(circles, 1)
	s.Equal(newCenter, circles[0].Center)
	s.Equal(500.0, circles[0].Radius)
}

func (s *CircleRepositoryTestSuite) TestUpdate_ForeignRowIsSilentNoop() {
	id, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center: domain.Point{Lat: 41.3851, Lng: 2.1734}, Radius: 500, Timestamp: time.Now(),
	})
	s.NoError(err)

	radius := 9999.0
	err = s.repo.Update(s.ctx, id, s.otherID, &domain.CirclePatch{Radius: &radius})
	s.NoError(err)

	circles, err := s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.Require().Len(circles, 1)
	s.Equal(500.0, circles[0].Radius)
}

func (s *CircleRepositoryTestSuite) TestDelete_ScopedToOwner() {
	id, err := s.repo.Create(s.ctx, s.userID, &domain.Circle{
		Center: domain.Point{Lat: 41.3851, Lng: 2.1734}, Radius: 500, Timestamp: time.Now(),
	})
	s.NoError(err)

	err = s.repo.Delete(s.ctx, id, s.otherID)
	s.NoError(err)

	circles, err := s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.Len(circles, 1)

	err = s.repo.Delete(s.ctx, id, s.userID)
	s.NoError(err)

	circles, err = s.repo.ListByUser(s.ctx, s.userID)
	s.NoError(err)
	s.Len(circles, 0)
}

func TestCircleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CircleRepositoryTestSuite))
}
