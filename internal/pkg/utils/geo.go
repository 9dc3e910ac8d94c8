package utils

// ValidateCoordinates checks lat/lng ranges.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius checks a circle radius in meters.
func ValidateRadius(radiusMeters float64) bool {
	return radiusMeters > 0
}
