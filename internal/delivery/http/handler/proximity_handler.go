package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/pkg/validator"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/usecase/dto"
)

// ProximityHandler - обработчик proximity-запросов
type ProximityHandler struct {
	proximityUC *usecase.ProximityUseCase
	logger      *zap.Logger
}

// NewProximityHandler - создание нового ProximityHandler
func NewProximityHandler(proximityUC *usecase.ProximityUseCase, logger *zap.Logger) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: proximityUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Ранжированная выдача сущностей вокруг точки
// @Description Фильтрует каталог по kind и тексту, аннотирует расстоянием от origin, отсекает по радиусу и сортирует
// @Tags proximity
// @Accept json
// @Produce json
// @Param request body dto.ProximityQueryRequest true "Параметры запроса"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProximityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/proximity/search [post]
func (h *ProximityHandler) Search(c *fiber.Ctx) error {
	var req dto.ProximityQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	query := domain.Query{
		Kind:           domain.Kind(req.Kind),
		RadiusKm:       req.RadiusKm,
		TextFilter:     req.TextFilter,
		SortKey:        domain.SortKey(req.SortKey),
		CustomSortAttr: req.CustomSortAttr,
		Limit:          req.Limit,
	}
	if req.Origin != nil {
		query.Origin = &domain.Point{Lat: req.Origin.Lat, Lon: req.Origin.Lon}
	}

	ranked, err := h.proximityUC.Execute(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	results := make([]dto.RankedEntityDTO, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, dto.ConvertRankedEntity(r))
	}

	return utils.SendSuccess(c, dto.ProximityResponse{
		Results: results,
		Total:   len(results),
	}, &utils.Meta{
		Total: len(results),
		Limit: req.Limit,
	})
}
