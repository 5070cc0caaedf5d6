package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/utils"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/usecase/dto"
)

// CatalogHandler - обработчик чтения каталогов сущностей
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// GetKinds godoc
// @Summary Список загруженных каталогов
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.KindsResponse}
// @Router /api/v1/catalog/kinds [get]
func (h *CatalogHandler) GetKinds(c *fiber.Ctx) error {
	kinds, err := h.catalogUC.Kinds(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}

	return utils.SendSuccess(c, dto.KindsResponse{Kinds: names}, &utils.Meta{
		Total: len(names),
	})
}

// GetEntities godoc
// @Summary Сущности каталога
// @Description Возвращает каталог kind в порядке вставки, опционально суженный текстовым фильтром q
// @Tags catalog
// @Produce json
// @Param kind path string true "Kind каталога" Enums(hospital, police, taxi, bike_vendor, place, custom)
// @Param q query string false "Текстовый фильтр по имени и адресу"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/catalog/{kind}/entities [get]
func (h *CatalogHandler) GetEntities(c *fiber.Ctx) error {
	kind := domain.Kind(c.Params("kind"))
	textFilter := c.Query("q")

	entities, err := h.catalogUC.ListEntities(c.Context(), kind, textFilter)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := make([]dto.EntityDTO, 0, len(entities))
	for _, e := range entities {
		result = append(result, dto.ConvertEntity(e))
	}

	return utils.SendSuccess(c, fiber.Map{
		"entities": result,
	}, &utils.Meta{
		Total: len(result),
	})
}
