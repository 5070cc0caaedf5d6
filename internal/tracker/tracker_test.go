package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/tracker"
)

// stubSource - источник с управляемым из теста каналом
type stubSource struct {
	ch      chan domain.Position
	watchEr error
}

func (s *stubSource) GetCurrent(_ context.Context, _ domain.WatchOptions) (domain.Position, error) {
	return domain.Position{}, errors.ErrLocationUnavailable
}

func (s *stubSource) Watch(ctx context.Context, _ domain.WatchOptions) (<-chan domain.Position, error) {
	if s.watchEr != nil {
		return nil, s.watchEr
	}
	go func() {
		<-ctx.Done()
		close(s.ch)
	}()
	return s.ch, nil
}

func nagpurReading() domain.Position {
	return domain.Position{
		Point:     domain.Point{Lat: 21.1458, Lon: 79.0882},
		AccuracyM: 10,
		Timestamp: time.Now(),
	}
}

func TestTracker_InitialStateIdle(t *testing.T) {
	trk := tracker.NewTracker(tracker.NewPushSource(), zap.NewNop())

	assert.Equal(t, tracker.StateIdle, trk.State())

	_, ok := trk.Current()
	assert.False(t, ok)
}

func TestTracker_StartAndReceive(t *testing.T) {
	source := tracker.NewPushSource()
	trk := tracker.NewTracker(source, zap.NewNop())

	err := trk.Start(context.Background(), domain.WatchOptions{})
	assert.NoError(t, err)
	assert.Equal(t, tracker.StateTracking, trk.State())

	source.Push(nagpurReading())

	assert.Eventually(t, func() bool {
		live, ok := trk.Current()
		return ok && live.Point.Lat == 21.1458
	}, time.Second, 10*time.Millisecond)

	live, _ := trk.Current()
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", live.SessionID.String())

	trk.Stop()
}

func TestTracker_StopIsIdempotent(t *testing.T) {
	source := tracker.NewPushSource()
	trk := tracker.NewTracker(source, zap.NewNop())

	// Stop без Start - no-op
	trk.Stop()
	assert.Equal(t, tracker.StateIdle, trk.State())

	_ = trk.Start(context.Background(), domain.WatchOptions{})
	trk.Stop()
	trk.Stop()
	assert.Equal(t, tracker.StateIdle, trk.State())
}

func TestTracker_StartReplacesPreviousSubscription(t *testing.T) {
	source := tracker.NewPushSource()
	trk := tracker.NewTracker(source, zap.NewNop())

	_ = trk.Start(context.Background(), domain.WatchOptions{})
	source.Push(nagpurReading())

	assert.Eventually(t, func() bool {
		_, ok := trk.Current()
		return ok
	}, time.Second, 10*time.Millisecond)

	first, _ := trk.Current()

	// Повторный Start заменяет подписку и начинает новую сессию
	_ = trk.Start(context.Background(), domain.WatchOptions{})
	assert.Equal(t, tracker.StateTracking, trk.State())

	source.Push(nagpurReading())

	assert.Eventually(t, func() bool {
		live, ok := trk.Current()
		return ok && live.SessionID != first.SessionID
	}, time.Second, 10*time.Millisecond)

	trk.Stop()
}

func TestTracker_SourceFailureSetsErrorState(t *testing.T) {
	source := &stubSource{ch: make(chan domain.Position)}
	trk := tracker.NewTracker(source, zap.NewNop())

	_ = trk.Start(context.Background(), domain.WatchOptions{})
	assert.Equal(t, tracker.StateTracking, trk.State())

	// Источник закрывает канал без отмены контекста - отказ
	close(source.ch)

	assert.Eventually(t, func() bool {
		return trk.State() == tracker.StateError
	}, time.Second, 10*time.Millisecond)
}

func TestTracker_StartFailure(t *testing.T) {
	source := &stubSource{watchEr: errors.ErrLocationUnavailable}
	trk := tracker.NewTracker(source, zap.NewNop())

	err := trk.Start(context.Background(), domain.WatchOptions{})
	assert.Error(t, err)
	assert.Equal(t, tracker.StateError, trk.State())
}

func TestTracker_GetOnceUnavailable(t *testing.T) {
	trk := tracker.NewTracker(tracker.NewPushSource(), zap.NewNop())

	_, err := trk.GetOnce(context.Background(), domain.WatchOptions{Timeout: 100 * time.Millisecond})
	assert.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrLocationUnavailable.Code, appErr.Code)
}

func TestTracker_GetOnceRespectsMaxAge(t *testing.T) {
	source := tracker.NewPushSource()
	trk := tracker.NewTracker(source, zap.NewNop())

	stale := nagpurReading()
	stale.Timestamp = time.Now().Add(-time.Hour)
	source.Push(stale)

	_, err := trk.GetOnce(context.Background(), domain.WatchOptions{MaxAge: time.Minute})
	assert.Error(t, err)

	fresh := nagpurReading()
	source.Push(fresh)

	got, err := trk.GetOnce(context.Background(), domain.WatchOptions{MaxAge: time.Minute})
	assert.NoError(t, err)
	assert.Equal(t, fresh.Point, got.Point)
}

func TestTracker_SubscribeReceivesUpdates(t *testing.T) {
	source := tracker.NewPushSource()
	trk := tracker.NewTracker(source, zap.NewNop())

	_ = trk.Start(context.Background(), domain.WatchOptions{})

	updates, unsubscribe := trk.Subscribe()

	source.Push(nagpurReading())

	select {
	case live := <-updates:
		assert.Equal(t, 21.1458, live.Point.Lat)
	case <-time.After(time.Second):
		t.Fatal("no update delivered to subscriber")
	}

	// Снятие последнего подписчика останавливает трекер
	unsubscribe()

	assert.Eventually(t, func() bool {
		return trk.State() == tracker.StateIdle
	}, time.Second, 10*time.Millisecond)
}
