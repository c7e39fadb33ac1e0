package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barf-backoffice/internal/application/dto"
	"github.com/tu-usuario/barf-backoffice/internal/application/pricing"
	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// PricingHandler maneja las peticiones HTTP de resolución de precios y totales
// de pedido (protegido).
type PricingHandler struct {
	resolver   *pricing.Resolver
	orderTotal *pricing.OrderTotalCalculator
	bizLoc     *time.Location
}

// NewPricingHandler construye el handler. bizLoc es la zona del negocio: la
// fecha "hoy" se calcula acá, una sola vez, nunca dentro del motor.
func NewPricingHandler(resolver *pricing.Resolver, orderTotal *pricing.OrderTotalCalculator, bizLoc *time.Location) *PricingHandler {
	return &PricingHandler{resolver: resolver, orderTotal: orderTotal, bizLoc: bizLoc}
}

// ResolvePrice resuelve el precio unitario vigente para una identidad de
// catálogo, comprador y fecha. POST /api/pricing/resolve
func (h *PricingHandler) ResolvePrice(c *fiber.Ctx) error {
	var in dto.ResolvePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Section == "" || in.Product == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "section y product son obligatorios"})
	}

	asOf, err := h.parseAsOf(in.AsOfDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of_date debe ser YYYY-MM-DD"})
	}

	resolved, err := h.resolver.Resolve(c.Context(), pricing.ResolveInput{
		Section:       in.Section,
		Product:       in.Product,
		Weight:        in.Weight,
		BuyerType:     in.BuyerType,
		PaymentMethod: in.PaymentMethod,
		AsOf:          asOf,
	})
	if err != nil {
		var restricted *domain.RestrictedProductError
		if errors.As(err, &restricted) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "RESTRICTED_PRODUCT", Message: restricted.Error()})
		}
		var notFound *domain.PriceNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRICE_NOT_FOUND", Message: notFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.ResolvePriceResponse{
		Price:         resolved.Price,
		Tier:          resolved.Tier,
		EffectiveDate: resolved.Record.EffectiveDate.String(),
		UsedFallback:  resolved.UsedFallback,
	})
}

// OrderTotal calcula el total de un pedido, tolerante a renglones sin precio.
// POST /api/pricing/order-total
func (h *PricingHandler) OrderTotal(c *fiber.Ctx) error {
	var in dto.OrderTotalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío"})
	}

	asOf, err := h.parseAsOf(in.AsOfDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of_date debe ser YYYY-MM-DD"})
	}

	items := make([]entity.OrderLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		item := entity.OrderLineItem{Name: it.Name, Quantity: it.Quantity}
		for _, opt := range it.Options {
			item.Options = append(item.Options, entity.ItemOption{Name: opt.Name, Quantity: opt.Quantity})
		}
		items = append(items, item)
	}

	result := h.orderTotal.Calculate(c.Context(), items, in.BuyerType, in.PaymentMethod, asOf)

	out := dto.OrderTotalResponse{
		Total:           result.Total,
		UnresolvedCount: result.UnresolvedCount,
		PerItem:         make([]dto.OrderItemTotalDTO, 0, len(result.PerItem)),
	}
	for _, item := range result.PerItem {
		out.PerItem = append(out.PerItem, dto.OrderItemTotalDTO{
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Subtotal:      item.Subtotal,
			Tier:          item.Tier,
			Resolved:      item.Resolved,
			LowConfidence: item.LowConfidence,
			FailureReason: item.FailureReason,
		})
	}
	return c.JSON(out)
}

// parseAsOf interpreta la fecha del request o cae al día de hoy en la zona del negocio.
func (h *PricingHandler) parseAsOf(s string) (entity.Date, error) {
	if s == "" {
		return entity.DateOf(time.Now().In(h.bizLoc)), nil
	}
	return entity.ParseDate(s)
}
