package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
)

// Source - платформенный источник геолокации. Трекер потребляет его через
// узкий контракт: одноразовое чтение и непрерывная подписка.
type Source interface {
	// GetCurrent возвращает текущее показание или ошибку, если источник
	// недоступен либо истёк opts.Timeout
	GetCurrent(ctx context.Context, opts domain.WatchOptions) (domain.Position, error)

	// Watch открывает непрерывную подписку; канал закрывается при отмене ctx
	// или отказе источника
	Watch(ctx context.Context, opts domain.WatchOptions) (<-chan domain.Position, error)
}

// PushSource - источник, в который показания заталкиваются снаружи
// (HTTP-обновления от устройства). Реализует Source.
type PushSource struct {
	mu      sync.Mutex
	latest  *domain.Position
	watches map[int]chan domain.Position
	nextID  int
}

func NewPushSource() *PushSource {
	return &PushSource{
		watches: make(map[int]chan domain.Position),
	}
}

// Push публикует показание всем активным подпискам. Медленные подписчики
// пропускают обновление, блокировки нет.
func (s *PushSource) Push(pos domain.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = &pos
	for _, ch := range s.watches {
		select {
		case ch <- pos:
		default:
		}
	}
}

// GetCurrent возвращает последнее показание не старше opts.MaxAge
func (s *PushSource) GetCurrent(_ context.Context, opts domain.WatchOptions) (domain.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return domain.Position{}, errors.ErrLocationUnavailable
	}
	if opts.MaxAge > 0 && time.Since(s.latest.Timestamp) > opts.MaxAge {
		return domain.Position{}, errors.ErrLocationUnavailable.WithDetails(map[string]interface{}{
			"reason": "last reading is older than max_age",
		})
	}
	return *s.latest, nil
}

// Watch открывает подписку; закрывается при отмене ctx
func (s *PushSource) Watch(ctx context.Context, _ domain.WatchOptions) (<-chan domain.Position, error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan domain.Position, 8)
	s.watches[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watches, id)
		s.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}
