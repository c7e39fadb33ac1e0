package entity

import "time"

// Location es una sede de entrega. CutoffHour/CutoffMinute es la hora límite de
// pedidos en la zona horaria del negocio; pasada esa hora el rollover puede
// sembrar la planilla del día siguiente.
type Location struct {
	ID              string
	Name            string
	SameDayDelivery bool
	CutoffHour      int // -1 => sin hora de corte definida (el rollover la saltea)
	CutoffMinute    int
	Active          bool
	CreatedAt       time.Time
}

// HasCutoff indica si la sede tiene hora de corte configurada.
func (l Location) HasCutoff() bool {
	return l.CutoffHour >= 0
}

// CutoffPassed indica si now (ya en la zona del negocio) superó la hora de corte.
func (l Location) CutoffPassed(now time.Time) bool {
	if !l.HasCutoff() {
		return false
	}
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), l.CutoffHour, l.CutoffMinute, 0, 0, now.Location())
	return !now.Before(cutoff)
}
