package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/usecase"
	"github.com/geomark-service/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
	pendingMinIdle  = 30 * time.Second
)

// MarkerEnrichmentWorker consumes marker-created events and fills in the
// address fields of markers that were saved without place names.
type MarkerEnrichmentWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	markerRepo   repository.MarkerRepository
	geocodeUC    *usecase.GeocodeUseCase
	consumerName string
	maxRetries   int
}

func NewMarkerEnrichmentWorker(
	streamRepo repository.StreamRepository,
	markerRepo repository.MarkerRepository,
	geocodeUC *usecase.GeocodeUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *MarkerEnrichmentWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &MarkerEnrichmentWorker{
		BaseWorker:   worker.NewBaseWorker("marker-enrichment", consumerGroup, logger),
		streamRepo:   streamRepo,
		markerRepo:   markerRepo,
		geocodeUC:    geocodeUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *MarkerEnrichmentWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting MarkerEnrichmentWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			reclaimed, err := w.reclaimPending(ctx)
			if err != nil {
				logger.Error("Failed to reclaim pending messages", zap.Error(err))
			}

			if processed+reclaimed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads up to maxBatchSize events and enriches each marker.
// Returns the number of messages consumed.
func (w *MarkerEnrichmentWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamMarkerEnrich,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK malformed messages so they do not poison the group
			_ = w.streamRepo.AckMessage(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.enrichMarker(ctx, event); err != nil {
			logger.Error("Failed to enrich marker",
				zap.Int64("marker_id", event.MarkerID),
				zap.Error(err))
			// Left unacked, reclaimPending retries it after pendingMinIdle
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// reclaimPending takes over messages another delivery left unacked and
// retries them. Entries delivered more than maxRetries times are dropped
// with an ack so the pending list cannot grow without bound.
func (w *MarkerEnrichmentWorker) reclaimPending(ctx context.Context) (int, error) {
	logger := w.Logger()

	pending, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamMarkerEnrich,
		w.ConsumerGroup(),
		w.consumerName,
		pendingMinIdle,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	for _, msg := range pending {
		if msg.DeliveryCount > int64(w.maxRetries) {
			logger.Warn("Dropping message after max retries",
				zap.String("message_id", msg.ID),
				zap.Int64("delivery_count", msg.DeliveryCount),
				zap.Int("max_retries", w.maxRetries))
			_ = w.streamRepo.AckMessage(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup(), msg.ID)
			continue
		}

		event, err := w.parseMessage(msg.StreamMessage)
		if err != nil {
			logger.Warn("Failed to parse pending message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			_ = w.streamRepo.AckMessage(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.enrichMarker(ctx, event); err != nil {
			logger.Error("Retry failed to enrich marker",
				zap.Int64("marker_id", event.MarkerID),
				zap.Int64("delivery_count", msg.DeliveryCount),
				zap.Error(err))
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamMarkerEnrich, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(pending), nil
}

func (w *MarkerEnrichmentWorker) enrichMarker(ctx context.Context, event *domain.MarkerCreatedEvent) error {
	addr, err := w.geocodeUC.Reverse(ctx, event.Latitude, event.Longitude)
	if err != nil {
		return fmt.Errorf("reverse geocode failed: %w", err)
	}

	patch := &domain.MarkerPatch{
		City:    &addr.City,
		Country: &addr.Country,
		Village: &addr.Village,
		State:   &addr.State,
		Suburb:  &addr.Suburb,
		Road:    &addr.Road,
	}

	if err := w.markerRepo.Update(ctx, event.MarkerID, event.UserID, patch); err != nil {
		return fmt.Errorf("failed to update marker: %w", err)
	}

	w.Logger().Info("Marker enriched",
		zap.Int64("marker_id", event.MarkerID),
		zap.String("city", addr.City),
		zap.String("country", addr.Country))

	return nil
}

func (w *MarkerEnrichmentWorker) parseMessage(msg domain.StreamMessage) (*domain.MarkerCreatedEvent, error) {
	var event domain.MarkerCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.MarkerID == 0 || event.UserID == 0 {
		return nil, fmt.Errorf("event missing marker_id or user_id")
	}

	return &event, nil
}
