package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/pkg/validator"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/usecase/dto"
)

// PositionHandler - обработчик обновлений и чтения LivePosition
type PositionHandler struct {
	positionUC *usecase.PositionUseCase
	logger     *zap.Logger
}

// NewPositionHandler - создание нового PositionHandler
func NewPositionHandler(positionUC *usecase.PositionUseCase, logger *zap.Logger) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
		logger:     logger,
	}
}

// Update godoc
// @Summary Обновление позиции от устройства
// @Tags position
// @Accept json
// @Produce json
// @Param request body dto.PositionUpdateRequest true "Показание устройства"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/position [post]
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	var req dto.PositionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	if err := h.positionUC.UpdatePosition(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"accepted": true,
	}, nil)
}

// GetOnce godoc
// @Summary Одноразовое чтение позиции
// @Description Возвращает свежее показание источника; при недоступности или таймауте - LOCATION_UNAVAILABLE, fallback выбирает вызывающая сторона
// @Tags position
// @Produce json
// @Param timeout_ms query int false "Таймаут ожидания показания"
// @Param max_age_ms query int false "Максимальный возраст показания"
// @Param high_accuracy query bool false "Запросить высокую точность"
// @Success 200 {object} utils.SuccessResponse{data=dto.PositionResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/position/once [get]
func (h *PositionHandler) GetOnce(c *fiber.Ctx) error {
	opts := domain.WatchOptions{
		HighAccuracy: c.QueryBool("high_accuracy"),
		Timeout:      time.Duration(c.QueryInt("timeout_ms")) * time.Millisecond,
		MaxAge:       time.Duration(c.QueryInt("max_age_ms")) * time.Millisecond,
	}

	pos, err := h.positionUC.GetOnce(c.Context(), opts)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pos, nil)
}

// GetCurrent godoc
// @Summary Текущая LivePosition
// @Tags position
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PositionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/position [get]
func (h *PositionHandler) GetCurrent(c *fiber.Ctx) error {
	pos, err := h.positionUC.CurrentPosition(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pos, nil)
}
