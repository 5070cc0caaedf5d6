package tracker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// State - состояние трекера
type State string

const (
	StateIdle     State = "idle"
	StateTracking State = "tracking"
	// StateError - источник отказал во время подписки; терминально до
	// явного рестарта через Start
	StateError State = "error"
)

// Tracker - единственный владелец и писатель текущей LivePosition.
// Подписчики получают копии через Subscribe и никогда не мутируют состояние.
// На один экземпляр - максимум одна активная подписка на источник:
// повторный Start сначала отменяет предыдущую.
type Tracker struct {
	source Source
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	current *domain.LivePosition
	session uuid.UUID
	cancel  context.CancelFunc
	done    chan struct{}
	subs    map[int]chan domain.LivePosition
	nextSub int
}

// NewTracker - создание нового Tracker в состоянии idle
func NewTracker(source Source, logger *zap.Logger) *Tracker {
	return &Tracker{
		source: source,
		logger: logger,
		state:  StateIdle,
		subs:   make(map[int]chan domain.LivePosition),
	}
}

// Start начинает непрерывное отслеживание. Если подписка уже активна,
// старая отменяется до активации новой - утечек подписок нет.
func (t *Tracker) Start(ctx context.Context, opts domain.WatchOptions) error {
	t.stopLocked()

	watchCtx, cancel := context.WithCancel(ctx)

	ch, err := t.source.Watch(watchCtx, opts)
	if err != nil {
		cancel()
		t.mu.Lock()
		t.state = StateError
		t.mu.Unlock()
		t.logger.Error("Failed to start location watch", zap.Error(err))
		return errors.ErrLocationUnavailable
	}

	done := make(chan struct{})
	session := uuid.New()

	t.mu.Lock()
	t.state = StateTracking
	t.session = session
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	t.logger.Info("Live position tracking started",
		zap.String("session_id", session.String()),
		zap.Bool("high_accuracy", opts.HighAccuracy))

	go t.watchLoop(watchCtx, ch, session, done)

	return nil
}

// watchLoop читает показания до закрытия канала источника
func (t *Tracker) watchLoop(ctx context.Context, ch <-chan domain.Position, session uuid.UUID, done chan struct{}) {
	defer close(done)

	for pos := range ch {
		live := domain.LivePosition{
			Point:     pos.Point,
			AccuracyM: pos.AccuracyM,
			Timestamp: pos.Timestamp,
			SessionID: session,
		}

		t.mu.Lock()
		t.current = &live
		for _, sub := range t.subs {
			select {
			case sub <- live:
			default: // подписчик не успевает - пропускает обновление
			}
		}
		t.mu.Unlock()
	}

	// Канал закрыт: отмена - штатная остановка, иначе отказ источника
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done != done {
		return // подписку уже заменил новый Start
	}
	if ctx.Err() != nil {
		t.state = StateIdle
	} else {
		t.state = StateError
		t.logger.Warn("Location source terminated the watch",
			zap.String("session_id", session.String()))
	}
}

// Stop отменяет активную подписку. Идемпотентен: Stop в состоянии idle - no-op.
func (t *Tracker) Stop() {
	t.stopLocked()

	t.mu.Lock()
	t.state = StateIdle
	t.mu.Unlock()
}

func (t *Tracker) stopLocked() {
	t.mu.Lock()
	cancel := t.cancel
	done := t.done
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// GetOnce - одноразовое чтение позиции. Fallback-координату при отказе
// выбирает вызывающая сторона, молчаливой подмены здесь нет.
func (t *Tracker) GetOnce(ctx context.Context, opts domain.WatchOptions) (domain.Position, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	pos, err := t.source.GetCurrent(ctx, opts)
	if err != nil {
		t.logger.Warn("One-shot position read failed", zap.Error(err))
		if _, ok := err.(*errors.AppError); ok {
			return domain.Position{}, err
		}
		return domain.Position{}, errors.ErrLocationUnavailable
	}
	return pos, nil
}

// Current возвращает копию последней известной позиции
func (t *Tracker) Current() (domain.LivePosition, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return domain.LivePosition{}, false
	}
	return *t.current, true
}

// State возвращает текущее состояние трекера
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Subscribe регистрирует подписчика на обновления позиции. Возвращённая
// функция снимает подписку; после снятия последнего подписчика трекер
// останавливается, если больше некому доставлять обновления.
func (t *Tracker) Subscribe() (<-chan domain.LivePosition, func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	ch := make(chan domain.LivePosition, 8)
	t.subs[id] = ch
	t.mu.Unlock()

	unsubscribe := func() {
		t.mu.Lock()
		if _, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(ch)
		}
		remaining := len(t.subs)
		t.mu.Unlock()

		if remaining == 0 {
			t.Stop()
		}
	}

	return ch, unsubscribe
}
