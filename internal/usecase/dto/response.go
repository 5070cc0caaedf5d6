package dto

import (
	"time"

	"github.com/proximity-service/internal/domain"
)

// RankedEntityDTO - контракт для слоёв отображения (маркеры карты, списки).
// Форма стабильна: id, kind, name, координаты, distance_km, rank плюс
// kind-специфичные атрибуты.
type RankedEntityDTO struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	Name       string                 `json:"name"`
	Lat        float64                `json:"lat"`
	Lon        float64                `json:"lon"`
	DistanceKm float64                `json:"distance_km"`
	Rank       int                    `json:"rank"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// ProximityResponse - результат proximity-запроса
type ProximityResponse struct {
	Results []RankedEntityDTO `json:"results"`
	Total   int               `json:"total"`
}

// EntityDTO - сущность каталога без аннотаций
type EntityDTO struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	Name       string                 `json:"name"`
	Lat        float64                `json:"lat"`
	Lon        float64                `json:"lon"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// KindsResponse - список загруженных каталогов
type KindsResponse struct {
	Kinds []string `json:"kinds"`
}

// PositionResponse - текущая LivePosition
type PositionResponse struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	State     string    `json:"state"`
}

// FavoritesResponse - снапшот избранного в порядке добавления
type FavoritesResponse struct {
	Favorites []EntityDTO `json:"favorites"`
	Total     int         `json:"total"`
}

// ConvertRankedEntity преобразует domain.RankedEntity в DTO
func ConvertRankedEntity(e domain.RankedEntity) RankedEntityDTO {
	return RankedEntityDTO{
		ID:         e.ID,
		Kind:       string(e.Kind),
		Name:       e.Name,
		Lat:        e.Coordinate.Lat,
		Lon:        e.Coordinate.Lon,
		DistanceKm: e.DistanceKm,
		Rank:       e.Rank,
		Attributes: e.Attributes,
	}
}

// ConvertEntity преобразует domain.Entity в DTO
func ConvertEntity(e domain.Entity) EntityDTO {
	return EntityDTO{
		ID:         e.ID,
		Kind:       string(e.Kind),
		Name:       e.Name,
		Lat:        e.Coordinate.Lat,
		Lon:        e.Coordinate.Lon,
		Attributes: e.Attributes,
	}
}
