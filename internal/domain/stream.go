package domain

// Stream names shared between the API and the enrichment worker.
const (
	StreamMarkerEnrich = "stream:marker:enrich"
)

// MarkerCreatedEvent asks the worker to reverse geocode a freshly created
// marker and fill in its address fields.
type MarkerCreatedEvent struct {
	MarkerID  int64   `json:"marker_id"`
	UserID    int64   `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StreamMessage is a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}

// PendingMessage is a message reclaimed from the pending entries list,
// carrying how many times the group has delivered it.
type PendingMessage struct {
	StreamMessage
	DeliveryCount int64
}
