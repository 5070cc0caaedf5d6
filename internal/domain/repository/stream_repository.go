package repository

import (
	"context"

	"github.com/proximity-service/internal/domain"
)

// StreamRepository - работа с Redis Streams для событий позиции
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group для стрима (идемпотентно)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до count непрочитанных сообщений (неблокирующий режим)
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream публикует JSON-сериализованное событие в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
