package repository

import (
	"context"

	"github.com/proximity-service/internal/domain"
)

// FavoriteRepository - персистентное хранилище избранного. Снапшот Entity
// сохраняется целиком, мутации только через явные Add/Remove.
type FavoriteRepository interface {
	// Add сохраняет сущность; повторное добавление того же id - no-op
	Add(ctx context.Context, entity domain.Entity) error

	// Remove удаляет по id; отсутствующий id - no-op
	Remove(ctx context.Context, id string) error

	// List возвращает снапшот в порядке добавления. Повреждённые записи
	// пропускаются и считаются, ошибка чтения никогда не фатальна.
	List(ctx context.Context) ([]domain.Entity, int, error)
}
