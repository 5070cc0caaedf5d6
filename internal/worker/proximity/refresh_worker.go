package proximity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// RefreshWorker пересчитывает proximity-выдачу в ответ на обновления позиции.
// На каждое PositionUpdateEvent выполняется запрос по каждому настроенному
// kind, результат публикуется в stream:proximity:refreshed.
type RefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	proximityUC  *usecase.ProximityUseCase
	consumerName string
	kinds        []domain.Kind
	radiusKm     float64
	limit        int
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(
	streamRepo repository.StreamRepository,
	proximityUC *usecase.ProximityUseCase,
	consumerGroup string,
	kinds []string,
	radiusKm float64,
	limit int,
	logger *zap.Logger,
) *RefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	domainKinds := make([]domain.Kind, 0, len(kinds))
	for _, k := range kinds {
		kind := domain.Kind(k)
		if kind.Valid() {
			domainKinds = append(domainKinds, kind)
		} else {
			logger.Warn("Ignoring unknown kind in worker config", zap.String("kind", k))
		}
	}

	return &RefreshWorker{
		BaseWorker:   worker.NewBaseWorker("proximity-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		proximityUC:  proximityUC,
		consumerName: consumerName,
		kinds:        domainKinds,
		radiusKm:     radiusKm,
		limit:        limit,
	}
}

// Start запускает воркер
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RefreshWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize),
		zap.Float64("radius_km", w.radiusKm))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPositionUpdate, w.ConsumerGroup()); err != nil {
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
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество обработанных сообщений.
func (w *RefreshWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPositionUpdate,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		w.refreshForEvent(ctx, event)
		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamPositionUpdate, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	return len(messages), nil
}

// refreshForEvent пересчитывает выдачу по каждому настроенному kind
// и публикует результаты. Отказ одного kind не блокирует остальные.
func (w *RefreshWorker) refreshForEvent(ctx context.Context, event *domain.PositionUpdateEvent) {
	logger := w.Logger()
	origin := domain.Point{Lat: event.Lat, Lon: event.Lon}

	for _, kind := range w.kinds {
		query := domain.Query{
			Origin:   &origin,
			Kind:     kind,
			RadiusKm: w.radiusKm,
			SortKey:  domain.SortByDistance,
			Limit:    w.limit,
		}

		refreshed := domain.ProximityRefreshedEvent{
			SessionID: event.SessionID,
			Kind:      kind,
			Origin:    origin,
			RadiusKm:  w.radiusKm,
		}

		results, err := w.proximityUC.Execute(ctx, query)
		if err != nil {
			logger.Error("Proximity refresh failed",
				zap.String("kind", string(kind)),
				zap.Error(err))
			refreshed.Error = err.Error()
		} else {
			refreshed.Results = results
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamProximityRefreshed, refreshed); err != nil {
			logger.Error("Failed to publish refreshed event",
				zap.String("kind", string(kind)),
				zap.Error(err))
			// Продолжаем с остальными
		}
	}
}

// parseMessage парсит сообщение из стрима в PositionUpdateEvent
func (w *RefreshWorker) parseMessage(msg domain.StreamMessage) (*domain.PositionUpdateEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.PositionUpdateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
