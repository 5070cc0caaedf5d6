package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/domain/repository"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/usecase/dto"
)

// FavoriteUseCase - избранные сущности пользователя
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	logger       *zap.Logger
}

// NewFavoriteUseCase - создание нового FavoriteUseCase
func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// Add сохраняет снапшот сущности; дубликат по id - no-op
func (uc *FavoriteUseCase) Add(ctx context.Context, req dto.FavoriteAddRequest) error {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return errors.ErrInvalidCoordinates
	}

	entity := domain.Entity{
		ID:         req.ID,
		Kind:       domain.Kind(req.Kind),
		Name:       req.Name,
		Coordinate: domain.Point{Lat: req.Lat, Lon: req.Lon},
		Attributes: req.Attributes,
	}

	if err := uc.favoriteRepo.Add(ctx, entity); err != nil {
		uc.logger.Error("Failed to add favorite", zap.String("id", req.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// Remove удаляет по id; отсутствующий id - no-op
func (uc *FavoriteUseCase) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.ErrInvalidRequest
	}

	if err := uc.favoriteRepo.Remove(ctx, id); err != nil {
		uc.logger.Error("Failed to remove favorite", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// List возвращает избранное в порядке добавления. Нечитаемое хранилище
// деградирует до пустого набора: ошибка логируется, но наружу не уходит.
func (uc *FavoriteUseCase) List(ctx context.Context) (*dto.FavoritesResponse, int, error) {
	entities, skipped, err := uc.favoriteRepo.List(ctx)
	if err != nil {
		uc.logger.Warn("Favorites storage unreadable, falling back to empty set", zap.Error(err))
		return &dto.FavoritesResponse{Favorites: []dto.EntityDTO{}}, 0, nil
	}

	favorites := make([]dto.EntityDTO, 0, len(entities))
	for _, e := range entities {
		favorites = append(favorites, dto.ConvertEntity(e))
	}

	return &dto.FavoritesResponse{
		Favorites: favorites,
		Total:     len(favorites),
	}, skipped, nil
}
