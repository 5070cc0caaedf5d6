package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/pkg/validator"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/usecase/dto"
)

// FavoriteHandler - обработчик избранного
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

// NewFavoriteHandler - создание нового FavoriteHandler
func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Избранное в порядке добавления
// @Tags favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoritesResponse}
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	favorites, skipped, err := h.favoriteUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, favorites, &utils.Meta{
		Total:   favorites.Total,
		Skipped: skipped,
	})
}

// Add godoc
// @Summary Добавление сущности в избранное
// @Description Сохраняет полный снапшот сущности; повторное добавление того же id - no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body dto.FavoriteAddRequest true "Снапшот сущности"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var req dto.FavoriteAddRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	if err := h.favoriteUC.Add(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"added": req.ID,
	}, nil)
}

// Remove godoc
// @Summary Удаление из избранного
// @Description Удаление отсутствующего id - no-op, ошибки не будет
// @Tags favorites
// @Produce json
// @Param id path string true "ID сущности"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.favoriteUC.Remove(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"removed": id,
	}, nil)
}
