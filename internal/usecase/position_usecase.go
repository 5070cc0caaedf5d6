package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/tracker"
	"github.com/proximity-service/internal/usecase/dto"
)

// PositionUseCase - приём обновлений позиции от устройства и чтение
// текущей LivePosition. Обновления идут в PushSource (его потребляет
// трекер) и публикуются в Redis Stream для воркеров. Сам трекер о
// запросах ничего не знает - он только эмитит позиции.
type PositionUseCase struct {
	trk        *tracker.Tracker
	pushSource *tracker.PushSource
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewPositionUseCase - создание нового PositionUseCase
func NewPositionUseCase(
	trk *tracker.Tracker,
	pushSource *tracker.PushSource,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *PositionUseCase {
	return &PositionUseCase{
		trk:        trk,
		pushSource: pushSource,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// UpdatePosition принимает показание устройства
func (uc *PositionUseCase) UpdatePosition(ctx context.Context, req dto.PositionUpdateRequest) error {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return errors.ErrInvalidCoordinates
	}

	pos := domain.Position{
		Point:     domain.Point{Lat: req.Lat, Lon: req.Lon},
		AccuracyM: req.AccuracyM,
		Timestamp: time.Now(),
	}

	uc.pushSource.Push(pos)

	// Публикация в стрим - best effort: недоступный Redis не должен
	// ломать приём позиций от устройства
	if uc.streamRepo != nil {
		event := domain.PositionUpdateEvent{
			SessionID: uc.sessionID(),
			Lat:       pos.Point.Lat,
			Lon:       pos.Point.Lon,
			AccuracyM: pos.AccuracyM,
			Timestamp: pos.Timestamp,
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamPositionUpdate, event); err != nil {
			uc.logger.Warn("Failed to publish position update", zap.Error(err))
		}
	}

	return nil
}

// CurrentPosition возвращает последнюю известную LivePosition
func (uc *PositionUseCase) CurrentPosition(_ context.Context) (*dto.PositionResponse, error) {
	live, ok := uc.trk.Current()
	if !ok {
		return nil, errors.ErrPositionNotTracked
	}

	return &dto.PositionResponse{
		Lat:       live.Point.Lat,
		Lon:       live.Point.Lon,
		AccuracyM: live.AccuracyM,
		Timestamp: live.Timestamp,
		SessionID: live.SessionID.String(),
		State:     string(uc.trk.State()),
	}, nil
}

// GetOnce - одноразовое чтение позиции с таймаутом
func (uc *PositionUseCase) GetOnce(ctx context.Context, opts domain.WatchOptions) (*dto.PositionResponse, error) {
	pos, err := uc.trk.GetOnce(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &dto.PositionResponse{
		Lat:       pos.Point.Lat,
		Lon:       pos.Point.Lon,
		AccuracyM: pos.AccuracyM,
		Timestamp: pos.Timestamp,
		State:     string(uc.trk.State()),
	}, nil
}

func (uc *PositionUseCase) sessionID() uuid.UUID {
	if live, ok := uc.trk.Current(); ok {
		return live.SessionID
	}
	return uuid.Nil
}
