package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barf-backoffice/internal/application/dto"
	"github.com/tu-usuario/barf-backoffice/internal/application/stock"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

// StockHandler maneja las planillas diarias: lectura, reconciliación y barrido
// de rollover (protegido).
type StockHandler struct {
	reconciler *stock.Reconciler
	rollover   *stock.Rollover
	stockRepo  repository.StockCounterRepository
	bizLoc     *time.Location
}

// NewStockHandler construye el handler.
func NewStockHandler(
	reconciler *stock.Reconciler,
	rollover *stock.Rollover,
	stockRepo repository.StockCounterRepository,
	bizLoc *time.Location,
) *StockHandler {
	return &StockHandler{reconciler: reconciler, rollover: rollover, stockRepo: stockRepo, bizLoc: bizLoc}
}

// List devuelve la planilla de una sede para una fecha.
// GET /api/stock?location=X&date=YYYY-MM-DD
func (h *StockHandler) List(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location es obligatorio"})
	}
	date, err := h.parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}

	rows, err := h.stockRepo.ListByLocationAndDate(c.Context(), location, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.StockCounterDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StockCounterDTO{
			Location:      row.Location,
			Section:       row.Section,
			Product:       row.Product,
			Weight:        row.Weight,
			Date:          row.Date.String(),
			OpeningStock:  row.OpeningStock,
			Replenishment: row.Replenishment,
			OrdersToday:   row.OrdersToday,
			ClosingStock:  row.ClosingStock,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "rows": out})
}

// Reconcile reconstruye la planilla de (sede, fecha) desde los pedidos crudos.
// POST /api/stock/reconcile
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location es obligatorio"})
	}
	date, err := h.parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}

	result, err := h.reconciler.ReconcileStockForDate(c.Context(), in.Location, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.ReconcileResponse{UpdatedCount: result.UpdatedCount, NoOp: result.NoOp}
	if !result.NoOp {
		out.CarriedFrom = result.CarriedFrom.String()
	}
	return c.JSON(out)
}

// RolloverSweep dispara el barrido de rollover fuera de cadencia (operación
// manual; el scheduler lo corre solo). POST /api/stock/rollover-sweep
func (h *StockHandler) RolloverSweep(c *fiber.Ctx) error {
	result, err := h.rollover.RunSweep(c.Context(), time.Now().In(h.bizLoc))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RolloverSweepResponse{
		LocationsProcessed: result.LocationsProcessed,
		RowsCreated:        result.RowsCreated,
		FailedLocations:    result.FailedLocations,
	})
}

func (h *StockHandler) parseDate(s string) (entity.Date, error) {
	if s == "" {
		return entity.DateOf(time.Now().In(h.bizLoc)), nil
	}
	return entity.ParseDate(s)
}
