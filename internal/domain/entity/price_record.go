package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tarifas de precio. Un cambio de precio nunca muta un registro histórico:
// se inserta uno nuevo con EffectiveDate posterior.
const (
	TierEfectivo       = "EFECTIVO"       // minorista pago en efectivo
	TierTransferencia  = "TRANSFERENCIA"  // minorista pago por transferencia
	TierMayorista      = "MAYORISTA"      // mayorista
)

// Tipos de comprador y medios de pago tal como llegan de los pedidos.
const (
	BuyerMinorista = "MINORISTA"
	BuyerMayorista = "MAYORISTA"

	PaymentEfectivo      = "EFECTIVO"
	PaymentTransferencia = "TRANSFERENCIA"
)

// PriceRecord es una entrada del libro de precios versionado. Para una identidad
// (sección, producto, peso) y tarifa, el precio vigente a una fecha es el registro
// activo con el mayor EffectiveDate <= fecha.
type PriceRecord struct {
	ID            string
	Section       string
	Product       string
	Weight        string // "" cuando el catálogo no registró granularidad de peso
	PriceTier     string
	Price         decimal.Decimal
	Active        bool
	EffectiveDate Date
	CreatedAt     time.Time
}
