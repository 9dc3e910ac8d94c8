package errors

import "net/http"

var (
	ErrDuplicateEmail = New(
		"DUPLICATE_EMAIL",
		"Email is already registered",
		http.StatusConflict,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid authorization token",
		http.StatusUnauthorized,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Radius must be a positive number of meters",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrGeocodeError = New(
		"GEOCODE_ERROR",
		"Reverse geocoding lookup failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
