package dto

// CatalogProductDTO identidad de catálogo para los listados.
type CatalogProductDTO struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Product string `json:"product"`
	Weight  string `json:"weight,omitempty"`
}

// CatalogSnapshotResponse respuesta de GET /api/catalog/products.
type CatalogSnapshotResponse struct {
	Products []CatalogProductDTO `json:"products"`
	LoadedAt string              `json:"loaded_at"`
	Total    int                 `json:"total"`
}
