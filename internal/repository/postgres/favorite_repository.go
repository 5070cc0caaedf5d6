package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"go.uber.org/zap"
)

const favoritesSchema = `
CREATE TABLE IF NOT EXISTS favorites (
    position   BIGSERIAL PRIMARY KEY,
    entity_id  TEXT NOT NULL UNIQUE,
    kind       TEXT NOT NULL,
    name       TEXT NOT NULL,
    lat        DOUBLE PRECISION NOT NULL,
    lon        DOUBLE PRECISION NOT NULL,
    attributes JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type favoriteRow struct {
	Position   int64     `db:"position"`
	EntityID   string    `db:"entity_id"`
	Kind       string    `db:"kind"`
	Name       string    `db:"name"`
	Lat        float64   `db:"lat"`
	Lon        float64   `db:"lon"`
	Attributes []byte    `db:"attributes"`
	CreatedAt  time.Time `db:"created_at"`
}

type favoriteRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewFavoriteRepository создает favorite repository поверх PostgreSQL
// и накатывает схему, если таблицы ещё нет
func NewFavoriteRepository(db *DB, logger *zap.Logger) (repository.FavoriteRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, favoritesSchema); err != nil {
		return nil, fmt.Errorf("migrate favorites: %w", err)
	}

	return &favoriteRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Add сохраняет полный снапшот сущности. Повторное добавление того же
// entity_id - no-op, не ошибка.
func (r *favoriteRepository) Add(ctx context.Context, entity domain.Entity) error {
	attrs, err := json.Marshal(entity.Attributes)
	if err != nil {
		r.logger.Error("Failed to marshal favorite attributes",
			zap.String("entity_id", entity.ID),
			zap.Error(err))
		return fmt.Errorf("marshal attributes: %w", err)
	}

	const query = `
		INSERT INTO favorites (entity_id, kind, name, lat, lon, attributes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query,
		entity.ID,
		string(entity.Kind),
		entity.Name,
		entity.Coordinate.Lat,
		entity.Coordinate.Lon,
		attrs,
	); err != nil {
		r.logger.Error("Failed to add favorite",
			zap.String("entity_id", entity.ID),
			zap.Error(err))
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

// Remove удаляет по id; отсутствующий id - no-op
func (r *favoriteRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE entity_id = $1`, id); err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.String("entity_id", id),
			zap.Error(err))
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// List возвращает снапшоты в порядке добавления. Строки с повреждённым
// attributes-снапшотом пропускаются и считаются, а не валят весь список.
func (r *favoriteRepository) List(ctx context.Context) ([]domain.Entity, int, error) {
	var rows []favoriteRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT position, entity_id, kind, name, lat, lon, attributes, created_at
		 FROM favorites ORDER BY position`); err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}

	entities := make([]domain.Entity, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		var attrs map[string]interface{}
		if len(row.Attributes) > 0 {
			if err := json.Unmarshal(row.Attributes, &attrs); err != nil {
				r.logger.Warn("Skipping favorite with corrupt attributes snapshot",
					zap.String("entity_id", row.EntityID),
					zap.Error(err))
				skipped++
				continue
			}
		}

		entities = append(entities, domain.Entity{
			ID:         row.EntityID,
			Kind:       domain.Kind(row.Kind),
			Name:       row.Name,
			Coordinate: domain.Point{Lat: row.Lat, Lon: row.Lon},
			Attributes: attrs,
		})
	}

	return entities, skipped, nil
}
