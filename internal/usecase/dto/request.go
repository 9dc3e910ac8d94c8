package dto

import (
	"github.com/geomark-service/internal/domain"
)

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateMarkerRequest places a marker. Coordinates are mandatory; address
// fields are optional and default server-side when omitted. Timestamp
// accepts RFC3339 or "2006-01-02 15:04:05" and defaults to now.
type CreateMarkerRequest struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Village   string   `json:"village"`
	State     string   `json:"state"`
	Suburb    string   `json:"suburb"`
	Road      string   `json:"road"`
	Timestamp *string  `json:"timestamp"`
}

// UpdateMarkerRequest is a partial update: only supplied fields change.
type UpdateMarkerRequest struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Village   *string  `json:"village"`
	State     *string  `json:"state"`
	Suburb    *string  `json:"suburb"`
	Road      *string  `json:"road"`
	Timestamp *string  `json:"timestamp"`
}

// CreatePolylineRequest stores an ordered vertex sequence. Vertex count is
// intentionally not constrained server-side.
type CreatePolylineRequest struct {
	Points    domain.PointList `json:"points" validate:"required"`
	Timestamp *string          `json:"timestamp"`
}

type UpdatePolylineRequest struct {
	Points    domain.PointList `json:"points"`
	Timestamp *string          `json:"timestamp"`
}

// CreatePolygonRequest stores a ring of vertices.
type CreatePolygonRequest struct {
	Points    domain.PointList `json:"points" validate:"required"`
	Timestamp *string          `json:"timestamp"`
}

type UpdatePolygonRequest struct {
	Points    domain.PointList `json:"points"`
	Timestamp *string          `json:"timestamp"`
}

// CreateCircleRequest stores a center point and a radius in meters.
type CreateCircleRequest struct {
	Center    *domain.Point `json:"center" validate:"required"`
	Radius    *float64      `json:"radius" validate:"required,gt=0"`
	Timestamp *string       `json:"timestamp"`
}

type UpdateCircleRequest struct {
	Center    *domain.Point `json:"center"`
	Radius    *float64      `json:"radius" validate:"omitempty,gt=0"`
	Timestamp *string       `json:"timestamp"`
}
