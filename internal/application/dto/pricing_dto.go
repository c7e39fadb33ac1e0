package dto

import "github.com/shopspring/decimal"

// ResolvePriceRequest body para POST /api/pricing/resolve.
type ResolvePriceRequest struct {
	Section       string `json:"section"`
	Product       string `json:"product"`
	Weight        string `json:"weight,omitempty"`
	BuyerType     string `json:"buyer_type"`
	PaymentMethod string `json:"payment_method"`
	AsOfDate      string `json:"as_of_date,omitempty"` // YYYY-MM-DD; vacío = hoy (zona del negocio)
}

// ResolvePriceResponse respuesta con procedencia del precio resuelto.
type ResolvePriceResponse struct {
	Price         decimal.Decimal `json:"price"`
	Tier          string          `json:"tier"`
	EffectiveDate string          `json:"effective_date"`
	UsedFallback  bool            `json:"used_fallback"`
}

// OrderItemRequest renglón de pedido para el cálculo de total.
type OrderItemRequest struct {
	Name     string              `json:"name"`
	Quantity int                 `json:"quantity,omitempty"`
	Options  []ItemOptionRequest `json:"options,omitempty"`
}

// ItemOptionRequest opción de un renglón (peso o sabor).
type ItemOptionRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity,omitempty"`
}

// OrderTotalRequest body para POST /api/pricing/order-total.
type OrderTotalRequest struct {
	Items         []OrderItemRequest `json:"items"`
	BuyerType     string             `json:"buyer_type"`
	PaymentMethod string             `json:"payment_method"`
	AsOfDate      string             `json:"as_of_date,omitempty"`
}

// OrderItemTotalDTO desglose por renglón. Resolved=false marca renglones sin
// precio; el total los excluye y el caller debe tratarlo como provisorio.
type OrderItemTotalDTO struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tier          string          `json:"tier,omitempty"`
	Resolved      bool            `json:"resolved"`
	LowConfidence bool            `json:"low_confidence,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
}

// OrderTotalResponse respuesta del total de pedido.
type OrderTotalResponse struct {
	Total           decimal.Decimal     `json:"total"`
	PerItem         []OrderItemTotalDTO `json:"per_item"`
	UnresolvedCount int                 `json:"unresolved_count"`
}
