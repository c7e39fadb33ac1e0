package entity

import "time"

// Order es un pedido creado por el checkout. El motor de reconciliación solo lo
// lee; la edición pasa por el flujo de pedidos, fuera de este núcleo.
type Order struct {
	ID            string
	Location      string
	DeliveryDate  Date
	BuyerType     string // MINORISTA | MAYORISTA
	PaymentMethod string // EFECTIVO | TRANSFERENCIA
	CreatedAt     time.Time
	Items         []OrderLineItem
}

// OrderLineItem es un renglón del pedido. Name puede ser un descriptor canónico
// del catálogo o una etiqueta legada escrita a mano; las opciones suelen llevar
// el peso o el sabor.
type OrderLineItem struct {
	Name     string
	Quantity int // 0 => se toma la cantidad de la primera opción (o 1)
	Options  []ItemOption
}

// ItemOption es una opción elegida dentro de un renglón ("5KG", "VACA", ...).
type ItemOption struct {
	Name     string
	Quantity int
}

// EffectiveQuantity devuelve la cantidad del renglón: la propia, si no la de la
// primera opción, y 1 como último recurso.
func (i OrderLineItem) EffectiveQuantity() int {
	if i.Quantity > 0 {
		return i.Quantity
	}
	if len(i.Options) > 0 && i.Options[0].Quantity > 0 {
		return i.Options[0].Quantity
	}
	return 1
}
