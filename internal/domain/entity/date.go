package entity

import (
	"fmt"
	"time"
)

// Date es un día calendario del negocio (fecha civil, sin hora ni zona).
// Se calcula una sola vez en el borde (handler/scheduler) en la zona horaria
// del negocio; la lógica de matching y reconciliación nunca vuelve a mirar el reloj.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate construye una fecha civil.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf devuelve el día calendario de t en su propia zona horaria.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate interpreta el formato YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String devuelve YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero indica si la fecha no fue asignada.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time devuelve la medianoche del día en la zona indicada.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays devuelve la fecha desplazada n días (n puede ser negativo).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday devuelve el día de la semana.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// NextDeliveryDay devuelve el siguiente día hábil de entrega: mañana,
// salvo que caiga domingo, en cuyo caso salta a lunes.
func (d Date) NextDeliveryDay() Date {
	next := d.AddDays(1)
	if next.Weekday() == time.Sunday {
		next = next.AddDays(1)
	}
	return next
}

// Before indica si d es anterior a other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After indica si d es posterior a other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal indica si ambas fechas son el mismo día.
func (d Date) Equal(other Date) bool {
	return d == other
}
