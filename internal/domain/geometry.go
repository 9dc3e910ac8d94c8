package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Point is a single coordinate pair. On the wire and in storage it is
// encoded as a two-element [lat, lng] array, matching what map clients
// produce from Leaflet latlngs. float64 JSON encoding round-trips exactly.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("point must be a [lat, lng] pair, got %d elements", len(pair))
	}
	p.Lat = pair[0]
	p.Lng = pair[1]
	return nil
}

// PointList is an ordered vertex sequence for polylines and polygon rings.
type PointList []Point

// Encode serializes the list for a JSONB column.
func (pl PointList) Encode() ([]byte, error) {
	return json.Marshal(pl)
}

// DecodePoints parses a JSONB column back into a PointList.
func DecodePoints(data []byte) (PointList, error) {
	var pl PointList
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, err
	}
	return pl, nil
}

type Marker struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	Village   string    `json:"village" db:"village"`
	State     string    `json:"state" db:"state"`
	Suburb    string    `json:"suburb" db:"suburb"`
	Road      string    `json:"road" db:"road"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Polyline struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Points    PointList `json:"points"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Polygon struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Points    PointList `json:"points"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Circle struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Center    Point     `json:"center"`
	Radius    float64   `json:"radius" db:"radius"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// Address holds reverse-geocoded place names for a coordinate. The strings
// come from the external lookup service and are stored as opaque text.
type Address struct {
	DisplayName string `json:"display_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Suburb      string `json:"suburb"`
	Road        string `json:"road"`
}

// Patch types carry partial updates: nil fields are left untouched by the
// repository, everything else replaces the stored value. The row timestamp
// is always refreshed on update.

type MarkerPatch struct {
	Name      *string
	Latitude  *float64
	Longitude *float64
	City      *string
	Country   *string
	Village   *string
	State     *string
	Suburb    *string
	Road      *string
	Timestamp *time.Time
}

type PolylinePatch struct {
	Points    PointList
	Timestamp *time.Time
}

type PolygonPatch struct {
	Points    PointList
	Timestamp *time.Time
}

type CirclePatch struct {
	Center    *Point
	Radius    *float64
	Timestamp *time.Time
}
