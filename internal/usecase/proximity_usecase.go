package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
)

// ProximityUseCase - движок proximity-запросов: фильтрация каталога,
// аннотация расстоянием, ранжирование. Состояния между вызовами Execute нет,
// конкурентные вызовы безопасны без блокировок.
type ProximityUseCase struct {
	catalogRepo repository.CatalogRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewProximityUseCase - создание нового ProximityUseCase
func NewProximityUseCase(
	catalogRepo repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ProximityUseCase {
	return &ProximityUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Execute выполняет proximity-запрос:
//  1. отбор кандидатов по kind и текстовому фильтру
//  2. аннотация расстоянием от origin
//  3. отсечка по радиусу (строго >, граница включается)
//  4. стабильная сортировка по sort key
//  5. назначение rank 0..N-1 и усечение до limit
//
// Пустой каталог - пустая выдача, не ошибка. Отсутствующий origin и
// неизвестный sort key - ErrInvalidQuery без молчаливого fallback.
func (uc *ProximityUseCase) Execute(ctx context.Context, query domain.Query) ([]domain.RankedEntity, error) {
	sortKey, err := uc.validateQuery(query)
	if err != nil {
		return nil, err
	}

	if cached, ok := uc.lookupCache(ctx, query); ok {
		return cached, nil
	}

	candidates, err := uc.selectCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	annotated := make([]domain.RankedEntity, 0, len(candidates))
	for _, entity := range candidates {
		distance := utils.HaversineDistanceKm(
			query.Origin.Lat, query.Origin.Lon,
			entity.Coordinate.Lat, entity.Coordinate.Lon,
		)
		if query.RadiusKm > 0 && distance > query.RadiusKm {
			continue
		}
		annotated = append(annotated, domain.RankedEntity{
			Entity:     entity,
			DistanceKm: distance,
		})
	}

	uc.sortResults(annotated, sortKey, query.CustomSortAttr)

	for i := range annotated {
		annotated[i].Rank = i
	}

	if query.Limit > 0 && len(annotated) > query.Limit {
		annotated = annotated[:query.Limit]
	}

	uc.storeCache(ctx, query, annotated)

	return annotated, nil
}

// validateQuery проверяет запрос и возвращает эффективный sort key
func (uc *ProximityUseCase) validateQuery(query domain.Query) (domain.SortKey, error) {
	if query.Origin == nil {
		return "", errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
			"reason": "origin is required: distance cannot be computed without it",
		})
	}
	if !utils.ValidateCoordinates(query.Origin.Lat, query.Origin.Lon) {
		return "", errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(query.RadiusKm) {
		return "", errors.ErrInvalidRadius
	}
	if query.Kind != "" && !query.Kind.Valid() {
		return "", errors.ErrUnknownKind.WithDetails(map[string]interface{}{
			"kind": string(query.Kind),
		})
	}

	sortKey := query.SortKey
	if sortKey == "" {
		sortKey = domain.SortByDistance
	}
	switch sortKey {
	case domain.SortByDistance, domain.SortByRating, domain.SortByPrice:
	case domain.SortByCustom:
		if query.CustomSortAttr == "" {
			return "", errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
				"reason": "custom sort requires custom_sort_attr",
			})
		}
	default:
		return "", errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
			"reason":   "unknown sort key",
			"sort_key": string(query.SortKey),
		})
	}

	return sortKey, nil
}

// selectCandidates отбирает сущности по kind (или по всем каталогам)
// и текстовому фильтру, сохраняя порядок вставки
func (uc *ProximityUseCase) selectCandidates(ctx context.Context, query domain.Query) ([]domain.Entity, error) {
	if query.Kind != "" {
		return uc.catalogRepo.FilterByText(ctx, query.Kind, query.TextFilter)
	}

	kinds, err := uc.catalogRepo.Kinds(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Entity
	for _, kind := range kinds {
		subset, err := uc.catalogRepo.FilterByText(ctx, kind, query.TextFilter)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, subset...)
	}
	return candidates, nil
}

// sortResults сортирует выдачу стабильно: ничьи сохраняют порядок каталога.
// Это инвариант корректности (UI требует детерминированный порядок),
// а не оптимизация.
func (uc *ProximityUseCase) sortResults(results []domain.RankedEntity, sortKey domain.SortKey, customAttr string) {
	switch sortKey {
	case domain.SortByDistance:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})

	case domain.SortByRating:
		// По убыванию, отсутствующий рейтинг считается 0
		sort.SliceStable(results, func(i, j int) bool {
			ri, _ := results[i].NumericAttr("rating")
			rj, _ := results[j].NumericAttr("rating")
			return ri > rj
		})

	case domain.SortByPrice:
		// По возрастанию, отсутствующая цена уходит в конец
		sort.SliceStable(results, func(i, j int) bool {
			return priceOf(&results[i].Entity) < priceOf(&results[j].Entity)
		})

	case domain.SortByCustom:
		sort.SliceStable(results, func(i, j int) bool {
			vi, oki := results[i].NumericAttr(customAttr)
			vj, okj := results[j].NumericAttr(customAttr)
			if !oki {
				vi = math.Inf(1)
			}
			if !okj {
				vj = math.Inf(1)
			}
			return vi < vj
		})
	}
}

func priceOf(e *domain.Entity) float64 {
	if price, ok := e.NumericAttr("price_per_km", "price"); ok {
		return price
	}
	return math.Inf(1)
}

// cacheKey - fingerprint запроса для ключа кеша
func cacheKey(query domain.Query) string {
	data, err := json.Marshal(query)
	if err != nil {
		return ""
	}
	sum := sha1.Sum(data)
	return "proximity:" + hex.EncodeToString(sum[:])
}

// lookupCache пытается отдать выдачу из кеша; ошибки кеша не фатальны
func (uc *ProximityUseCase) lookupCache(ctx context.Context, query domain.Query) ([]domain.RankedEntity, bool) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return nil, false
	}
	key := cacheKey(query)
	if key == "" {
		return nil, false
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.RankedEntity
	if err := json.Unmarshal(data, &results); err != nil {
		uc.logger.Warn("Failed to unmarshal cached proximity results", zap.Error(err))
		return nil, false
	}
	return results, true
}

func (uc *ProximityUseCase) storeCache(ctx context.Context, query domain.Query, results []domain.RankedEntity) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return
	}
	key := cacheKey(query)
	if key == "" {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache proximity results", zap.Error(err))
	}
}
