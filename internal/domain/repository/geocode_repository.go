package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// GeocodeRepository is the external reverse-geocoding lookup.
type GeocodeRepository interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.Address, error)
}
