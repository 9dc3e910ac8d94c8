package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geomark-service/internal/pkg/utils"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lng   float64
		valid bool
	}{
		{"zero zero", 0, 0, true},
		{"barcelona", 41.3851, 2.1734, true},
		{"south west extreme", -90, -180, true},
		{"north east extreme", 90, 180, true},
		{"lat too high", 90.0001, 0, false},
		{"lat too low", -90.0001, 0, false},
		{"lng too high", 0, 180.0001, false},
		{"lng too low", 0, -180.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, utils.ValidateCoordinates(tt.lat, tt.lng))
		})
	}
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(0.5))
	assert.True(t, utils.ValidateRadius(5000))
	assert.False(t, utils.ValidateRadius(0))
	assert.False(t, utils.ValidateRadius(-100))
}
