package repository

import (
	"context"
	"time"

	"github.com/geomark-service/internal/domain"
)

// StreamRepository is the Redis Streams boundary between the API and the
// enrichment worker.
type StreamRepository interface {
	// CreateConsumerGroup creates the group, tolerating BUSYGROUP.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for a consumer.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// ClaimPending transfers up to count messages that have sat unacked
	// for at least minIdle to the given consumer, with delivery counts.
	ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int) ([]domain.PendingMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream appends a JSON-encoded payload to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
