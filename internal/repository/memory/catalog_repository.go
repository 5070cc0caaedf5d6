package memory

import (
	"context"
	"sync"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"go.uber.org/zap"
)

// catalogRepository держит снапшоты каталогов в памяти. Сущности неизменяемы
// после загрузки, наружу всегда отдаются копии слайсов, поэтому конкурентные
// чтения во время запросов безопасны.
type catalogRepository struct {
	mu       sync.RWMutex
	catalogs map[domain.Kind][]domain.Entity
	logger   *zap.Logger
}

// NewCatalogRepository создает новый in-memory catalog repository
func NewCatalogRepository(logger *zap.Logger) repository.CatalogRepository {
	return &catalogRepository{
		catalogs: make(map[domain.Kind][]domain.Entity),
		logger:   logger,
	}
}

// ReplaceAll атомарно заменяет снапшот каталога для kind
func (r *catalogRepository) ReplaceAll(_ context.Context, kind domain.Kind, entities []domain.Entity) error {
	snapshot := make([]domain.Entity, len(entities))
	copy(snapshot, entities)

	r.mu.Lock()
	r.catalogs[kind] = snapshot
	r.mu.Unlock()

	r.logger.Debug("Catalog snapshot replaced",
		zap.String("kind", string(kind)),
		zap.Int("entities", len(snapshot)))
	return nil
}

// All возвращает копию каталога kind в порядке вставки
func (r *catalogRepository) All(_ context.Context, kind domain.Kind) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := r.catalogs[kind]
	result := make([]domain.Entity, len(entities))
	copy(result, entities)
	return result, nil
}

// FilterByText возвращает подмножество kind по текстовому фильтру,
// порядок вставки сохраняется
func (r *catalogRepository) FilterByText(_ context.Context, kind domain.Kind, query string) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := r.catalogs[kind]
	result := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if e.MatchesText(query) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Kinds возвращает kind с непустыми каталогами в фиксированном порядке
func (r *catalogRepository) Kinds(_ context.Context) ([]domain.Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Kind, 0, len(r.catalogs))
	for _, kind := range domain.Kinds {
		if len(r.catalogs[kind]) > 0 {
			result = append(result, kind)
		}
	}
	return result, nil
}
