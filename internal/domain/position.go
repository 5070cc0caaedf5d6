package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с потребителями на стороне UI-backend)
const (
	StreamPositionUpdate     = "stream:position:update"
	StreamProximityRefreshed = "stream:proximity:refreshed"
)

// Position - одно показание источника геолокации
type Position struct {
	Point     Point     `json:"point"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
}

// LivePosition - последняя известная позиция пользователя. Единственный
// писатель - Live Position Tracker, все остальные читают копии.
type LivePosition struct {
	Point     Point     `json:"point"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
	SessionID uuid.UUID `json:"session_id"`
}

// WatchOptions - опции подписки на источник геолокации, зеркалят
// опции getCurrentPosition/watchPosition платформы
type WatchOptions struct {
	HighAccuracy bool          `json:"high_accuracy"`
	Timeout      time.Duration `json:"timeout"`
	MaxAge       time.Duration `json:"max_age"`
}

// PositionUpdateEvent - событие обновления позиции в Redis Stream
type PositionUpdateEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
}

// ProximityRefreshedEvent - пересчитанная выдача для одной позиции и одного
// kind, публикуется воркером в ответ на PositionUpdateEvent
type ProximityRefreshedEvent struct {
	SessionID uuid.UUID      `json:"session_id"`
	Kind      Kind           `json:"kind"`
	Origin    Point          `json:"origin"`
	RadiusKm  float64        `json:"radius_km"`
	Results   []RankedEntity `json:"results"`
	Error     string         `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
