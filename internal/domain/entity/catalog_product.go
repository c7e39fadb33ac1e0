package entity

import (
	"strings"
	"time"
)

// Secciones del catálogo. Los valores canónicos viven en mayúsculas porque así
// se comparan contra los nombres libres de los pedidos.
const (
	SectionPerro  = "PERRO"
	SectionGato   = "GATO"
	SectionOtros  = "OTROS"
	SectionCrudos = "CRUDOS"
)

// CatalogProduct identifica un producto del catálogo por la terna (sección, producto, peso).
// Weight queda vacío cuando el peso va dentro del nombre (huesos, cornalitos) o no
// aplica (box de complementos). La terna es única dentro del catálogo activo.
type CatalogProduct struct {
	ID        string
	Section   string
	Product   string
	Weight    string // "5KG", "10KG", "15KG" o ""
	Active    bool
	CreatedAt time.Time
}

// Identifier devuelve "PRODUCTO PESO" (o solo el producto si no hay peso).
// Es la cadena contra la que se buscan los sabores de las opciones BIG DOG.
func (p CatalogProduct) Identifier() string {
	if p.Weight == "" {
		return p.Product
	}
	return p.Product + " " + p.Weight
}

// Descriptor devuelve la forma "SECCION - PRODUCTO - PESO" usada por el catálogo de precios.
func (p CatalogProduct) Descriptor() string {
	parts := []string{p.Section, p.Product}
	if p.Weight != "" {
		parts = append(parts, p.Weight)
	}
	return strings.Join(parts, " - ")
}

// IsBigDog indica si el producto pertenece a la línea BIG DOG.
func (p CatalogProduct) IsBigDog() bool {
	return strings.Contains(p.Product, "BIG DOG")
}

// StockKey es la identidad (sección, producto, peso) como clave de mapa.
type StockKey struct {
	Section string
	Product string
	Weight  string
}

// Key devuelve la identidad del producto como clave comparable.
func (p CatalogProduct) Key() StockKey {
	return StockKey{Section: p.Section, Product: p.Product, Weight: p.Weight}
}
