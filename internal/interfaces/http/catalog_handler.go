package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barf-backoffice/internal/application/dto"
	"github.com/tu-usuario/barf-backoffice/internal/application/usecase"
)

// CatalogHandler expone el snapshot del catálogo y su recarga (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List devuelve el snapshot vigente del catálogo. GET /api/catalog/products
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	snapshot, err := h.uc.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_LOADED", Message: "catálogo todavía no cargado"})
	}

	out := dto.CatalogSnapshotResponse{
		Products: make([]dto.CatalogProductDTO, 0, len(snapshot.Products)),
		LoadedAt: snapshot.LoadedAt.Format(time.RFC3339),
		Total:    len(snapshot.Products),
	}
	for _, p := range snapshot.Products {
		out.Products = append(out.Products, dto.CatalogProductDTO{
			ID:      p.ID,
			Section: p.Section,
			Product: p.Product,
			Weight:  p.Weight,
		})
	}
	return c.JSON(out)
}

// Reload recarga el snapshot desde el store. POST /api/catalog/reload
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	if err := h.uc.Reload(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "catálogo recargado"})
}
