package repository

import (
	"context"

	"github.com/proximity-service/internal/domain"
)

// CatalogRepository - хранилище сущностей каталога. Каталоги разных kind
// независимы, порядок вставки сохраняется.
type CatalogRepository interface {
	// ReplaceAll атомарно заменяет снапшот каталога для kind
	ReplaceAll(ctx context.Context, kind domain.Kind, entities []domain.Entity) error

	// All возвращает все сущности kind в порядке вставки (read-only копия)
	All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error)

	// FilterByText возвращает подмножество kind по регистронезависимому
	// вхождению подстроки в имя или адрес. Пустая строка = без фильтра.
	FilterByText(ctx context.Context, kind domain.Kind, query string) ([]domain.Entity, error)

	// Kinds возвращает список kind с загруженными каталогами
	Kinds(ctx context.Context) ([]domain.Kind, error)
}
