package entity

import "time"

// StockCounter es la planilla diaria de stock de un producto en una sede.
// OrdersToday se deriva siempre desde los pedidos crudos (nunca se confía en el
// valor guardado); la reconciliación la reescribe completa cada corrida.
type StockCounter struct {
	ID            string
	Location      string
	Section       string
	Product       string
	Weight        string
	Date          Date
	OpeningStock  int
	Replenishment int // "llevamos": reposición manual cargada por el local
	OrdersToday   int
	ClosingStock  int // OpeningStock + Replenishment - OrdersToday
	UpdatedAt     time.Time
}

// ProductKey devuelve la identidad de catálogo de la fila.
func (s StockCounter) ProductKey() StockKey {
	return StockKey{Section: s.Section, Product: s.Product, Weight: s.Weight}
}

// Recompute recalcula el cierre a partir de apertura, llevamos y pedidos.
func (s *StockCounter) Recompute() {
	s.ClosingStock = s.OpeningStock + s.Replenishment - s.OrdersToday
}
