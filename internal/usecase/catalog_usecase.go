package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/proximity-service/internal/config"
	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
)

// kindFixtures - имена JSON-фикстур по kind внутри data dir
var kindFixtures = map[domain.Kind]string{
	domain.KindHospital:   "hospitals.json",
	domain.KindPolice:     "police_stations.json",
	domain.KindTaxi:       "taxis.json",
	domain.KindBikeVendor: "bike_rentals.json",
	domain.KindPlace:      "places.json",
}

// CatalogUseCase - ингестия и чтение каталогов сущностей
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	cfg         config.CatalogConfig
	logger      *zap.Logger
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	cfg config.CatalogConfig,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// LoadKind нормализует сырые записи в Entity и заменяет снапшот каталога.
// Записи без имени или без координат (когда для kind не настроен synthetic
// default) пропускаются: это фатально для записи, не для каталога, и
// количество пропусков возвращается наружу, а не теряется молча.
func (uc *CatalogUseCase) LoadKind(ctx context.Context, kind domain.Kind, records []domain.RawRecord) (int, int, error) {
	if !kind.Valid() {
		return 0, 0, errors.ErrUnknownKind.WithDetails(map[string]interface{}{
			"kind": string(kind),
		})
	}

	hasDefault := uc.kindHasDefault(kind)
	entities := make([]domain.Entity, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	skipped := 0

	for i, record := range records {
		entity, err := uc.normalizeRecord(kind, i, record, hasDefault)
		if err != nil {
			uc.logger.Warn("Skipping invalid catalog record",
				zap.String("kind", string(kind)),
				zap.Int("index", i),
				zap.Error(err))
			skipped++
			continue
		}

		// id уникален в пределах снапшота
		if _, dup := seen[entity.ID]; dup {
			uc.logger.Warn("Skipping catalog record with duplicate id",
				zap.String("kind", string(kind)),
				zap.String("id", entity.ID))
			skipped++
			continue
		}
		seen[entity.ID] = struct{}{}

		entities = append(entities, entity)
	}

	if err := uc.catalogRepo.ReplaceAll(ctx, kind, entities); err != nil {
		return 0, 0, err
	}

	uc.logger.Info("Catalog loaded",
		zap.String("kind", string(kind)),
		zap.Int("loaded", len(entities)),
		zap.Int("skipped", skipped))

	return len(entities), skipped, nil
}

// normalizeRecord приводит сырую запись к каноничной Entity
func (uc *CatalogUseCase) normalizeRecord(kind domain.Kind, index int, record domain.RawRecord, hasDefault bool) (domain.Entity, error) {
	if record.Name == "" {
		return domain.Entity{}, errors.ErrInvalidRecord.WithDetails(map[string]interface{}{
			"reason": "name is required",
		})
	}

	var coord domain.Point
	switch {
	case record.Lat != nil && record.Lon != nil:
		coord = domain.Point{Lat: *record.Lat, Lon: *record.Lon}
	case hasDefault:
		// Явно настроенный synthetic default (центр города), не скрытое
		// поведение: kind должен быть перечислен в CATALOG_DEFAULT_KINDS
		coord = domain.Point{Lat: uc.cfg.DefaultLat, Lon: uc.cfg.DefaultLon}
	default:
		return domain.Entity{}, errors.ErrInvalidRecord.WithDetails(map[string]interface{}{
			"reason": "record has no coordinates and no synthetic default is configured for this kind",
		})
	}

	if !utils.ValidateCoordinates(coord.Lat, coord.Lon) {
		return domain.Entity{}, errors.ErrInvalidRecord.WithDetails(map[string]interface{}{
			"reason": "coordinates out of range",
		})
	}

	id := record.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", kind, index)
	}

	return domain.Entity{
		ID:         id,
		Kind:       kind,
		Name:       record.Name,
		Coordinate: coord,
		Attributes: record.Attributes,
	}, nil
}

// LoadFromDir загружает все известные фикстуры из data dir.
// Отсутствующий файл - просто незагруженный каталог, не ошибка.
func (uc *CatalogUseCase) LoadFromDir(ctx context.Context, dataDir string) error {
	for _, kind := range domain.Kinds {
		fixture, ok := kindFixtures[kind]
		if !ok {
			continue
		}

		path := filepath.Join(dataDir, fixture)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				uc.logger.Debug("No fixture for kind, skipping",
					zap.String("kind", string(kind)),
					zap.String("path", path))
				continue
			}
			return fmt.Errorf("read fixture %s: %w", path, err)
		}

		var records []domain.RawRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parse fixture %s: %w", path, err)
		}

		if _, _, err := uc.LoadKind(ctx, kind, records); err != nil {
			return fmt.Errorf("load kind %s: %w", kind, err)
		}
	}
	return nil
}

// ListEntities возвращает каталог kind, опционально суженный текстовым фильтром
func (uc *CatalogUseCase) ListEntities(ctx context.Context, kind domain.Kind, textFilter string) ([]domain.Entity, error) {
	if !kind.Valid() {
		return nil, errors.ErrUnknownKind.WithDetails(map[string]interface{}{
			"kind": string(kind),
		})
	}
	return uc.catalogRepo.FilterByText(ctx, kind, textFilter)
}

// Kinds возвращает список загруженных каталогов
func (uc *CatalogUseCase) Kinds(ctx context.Context) ([]domain.Kind, error) {
	return uc.catalogRepo.Kinds(ctx)
}

func (uc *CatalogUseCase) kindHasDefault(kind domain.Kind) bool {
	for _, k := range uc.cfg.DefaultKinds {
		if domain.Kind(k) == kind {
			return true
		}
	}
	return false
}
