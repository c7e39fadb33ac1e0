package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrNoPriorStock   = errors.New("sin planilla de stock previa para la sede")
	ErrLocationClosed = errors.New("la sede no opera entrega en el día")
)

// MalformedDescriptorError indica que un descriptor de catálogo no pudo separarse
// en sección/producto (menos de dos segmentos). No se reintenta.
type MalformedDescriptorError struct {
	Descriptor string
}

func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("descriptor de producto malformado: %q", e.Descriptor)
}

// PriceNotFoundError indica que ningún registro de precio aplica, incluso tras el
// fallback flexible sin peso. Tried lista las variantes de consulta intentadas
// para diagnosticar huecos del catálogo.
type PriceNotFoundError struct {
	Section string
	Product string
	Weight  string
	Tier    string
	Tried   []string
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("precio no encontrado para %s - %s (%s, tarifa %s); consultas: [%s]",
		e.Section, e.Product, e.Weight, e.Tier, strings.Join(e.Tried, "; "))
}

// RestrictedProductError indica un rechazo de política: producto de línea CRUDOS
// (o solo-mayorista) pedido por un comprador no mayorista. Distinto de
// PriceNotFoundError porque no es un hueco de datos.
type RestrictedProductError struct {
	Section   string
	Product   string
	BuyerType string
}

func (e *RestrictedProductError) Error() string {
	return fmt.Sprintf("producto restringido %s - %s para comprador %s", e.Section, e.Product, e.BuyerType)
}
