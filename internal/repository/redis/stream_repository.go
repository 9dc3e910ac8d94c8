package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type streamRepository struct {
	client    *redis.Client
	readBlock time.Duration
	logger    *zap.Logger
}

func NewStreamRepository(client *redis.Client, readBlock time.Duration, logger *zap.Logger) repository.StreamRepository {
	if readBlock <= 0 {
		readBlock = time.Second
	}
	return &streamRepository{
		client:    client,
		readBlock: readBlock,
		logger:    logger,
	}
}

// CreateConsumerGroup creates a consumer group starting at new messages.
// MKSTREAM creates the stream if it does not exist yet.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if strings.Contains(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch reads up to count unseen messages, blocking briefly so the
// worker loop does not spin on an empty stream.
func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    r.readBlock,
	}).Result()

	if err == redis.Nil {
		return nil, nil // no new messages
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Error("Failed to read from stream",
			zap.String("stream", stream),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var messages []domain.StreamMessage
	for _, s := range result {
		for _, msg := range s.Messages {
			data, ok := msg.Values["data"].(string)
			if !ok {
				r.logger.Warn("Stream message without data field",
					zap.String("stream", stream),
					zap.String("message_id", msg.ID))
				continue
			}
			messages = append(messages, domain.StreamMessage{
				ID:   msg.ID,
				Data: data,
			})
		}
	}

	return messages, nil
}

// ClaimPending inspects the pending entries list and claims messages idle
// for at least minIdle, carrying each entry's delivery count so the caller
// can bound retries.
func (r *streamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int) ([]domain.PendingMessage, error) {
	pending, err := r.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: stream,
		Group:  group,
		Idle:   minIdle,
		Start:  "-",
		End:    "+",
		Count:  int64(count),
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		r.logger.Error("Failed to read pending entries",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read pending entries: %w", err)
	}

	if len(pending) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(pending))
	deliveries := make(map[string]int64, len(pending))
	for _, p := range pending {
		ids = append(ids, p.ID)
		deliveries[p.ID] = p.RetryCount
	}

	claimed, err := r.client.XClaim(ctx, &redis.XClaimArgs{
		Stream:   stream,
		Group:    group,
		Consumer: consumer,
		MinIdle:  minIdle,
		Messages: ids,
	}).Result()
	if err != nil && err != redis.Nil {
		r.logger.Error("Failed to claim pending messages",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return nil, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	var messages []domain.PendingMessage
	for _, msg := range claimed {
		data, ok := msg.Values["data"].(string)
		if !ok {
			r.logger.Warn("Pending message without data field",
				zap.String("stream", stream),
				zap.String("message_id", msg.ID))
			continue
		}
		messages = append(messages, domain.PendingMessage{
			StreamMessage: domain.StreamMessage{ID: msg.ID, Data: data},
			DeliveryCount: deliveries[msg.ID],
		})
	}

	return messages, nil
}

func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to ack message",
			zap.String("stream", stream),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal stream payload: %w", err)
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Published to stream", zap.String("stream", stream))
	return nil
}
