package dto

// ReconcileRequest body para POST /api/stock/reconcile.
type ReconcileRequest struct {
	Location string `json:"location"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// ReconcileResponse resultado de una corrida de reconciliación.
type ReconcileResponse struct {
	UpdatedCount int    `json:"updated_count"`
	CarriedFrom  string `json:"carried_from,omitempty"`
	NoOp         bool   `json:"no_op,omitempty"`
}

// RolloverSweepResponse resultado de un barrido de rollover.
type RolloverSweepResponse struct {
	LocationsProcessed int      `json:"locations_processed"`
	RowsCreated        int      `json:"rows_created"`
	FailedLocations    []string `json:"failed_locations,omitempty"`
}

// StockCounterDTO fila de planilla diaria para los listados.
type StockCounterDTO struct {
	Location      string `json:"location"`
	Section       string `json:"section"`
	Product       string `json:"product"`
	Weight        string `json:"weight,omitempty"`
	Date          string `json:"date"`
	OpeningStock  int    `json:"opening_stock"`
	Replenishment int    `json:"llevamos"`
	OrdersToday   int    `json:"orders_today"`
	ClosingStock  int    `json:"closing_stock"`
}
