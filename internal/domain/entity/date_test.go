package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

func TestParseDate_Valida(t *testing.T) {
	d, err := entity.ParseDate("2024-06-11")
	require.NoError(t, err)
	assert.Equal(t, entity.NewDate(2024, time.June, 11), d)
	assert.Equal(t, "2024-06-11", d.String())
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	_, err := entity.ParseDate("11/06/2024")
	assert.Error(t, err, "solo se acepta YYYY-MM-DD")

	_, err = entity.ParseDate("")
	assert.Error(t, err)
}

func TestDate_AddDays_CruzaMes(t *testing.T) {
	d := entity.NewDate(2024, time.January, 31)
	assert.Equal(t, entity.NewDate(2024, time.February, 1), d.AddDays(1))
	assert.Equal(t, entity.NewDate(2024, time.January, 30), d.AddDays(-1))
}

// TestDate_NextDeliveryDay_SaltaDomingo verifica que el día siguiente de entrega
// nunca cae domingo: sábado salta directo a lunes.
func TestDate_NextDeliveryDay_SaltaDomingo(t *testing.T) {
	sabado := entity.NewDate(2024, time.June, 15)
	require.Equal(t, time.Saturday, sabado.Weekday())

	lunes := sabado.NextDeliveryDay()
	assert.Equal(t, entity.NewDate(2024, time.June, 17), lunes)
	assert.Equal(t, time.Monday, lunes.Weekday())
}

func TestDate_NextDeliveryDay_DiaHabilNormal(t *testing.T) {
	martes := entity.NewDate(2024, time.June, 11)
	require.Equal(t, time.Tuesday, martes.Weekday())

	assert.Equal(t, entity.NewDate(2024, time.June, 12), martes.NextDeliveryDay())
}

func TestDate_Comparaciones(t *testing.T) {
	a := entity.NewDate(2024, time.June, 10)
	b := entity.NewDate(2024, time.June, 11)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(entity.NewDate(2024, time.June, 10)))

	// Cruce de año y de mes
	assert.True(t, entity.NewDate(2023, time.December, 31).Before(entity.NewDate(2024, time.January, 1)))
	assert.True(t, entity.NewDate(2024, time.May, 31).Before(entity.NewDate(2024, time.June, 1)))
}

func TestDate_IsZero(t *testing.T) {
	var d entity.Date
	assert.True(t, d.IsZero())
	assert.False(t, entity.NewDate(2024, time.June, 11).IsZero())
}

func TestDateOf_UsaZonaDelInstante(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 01:30 del 12 en UTC son las 22:30 del 11 en UTC-3: el día civil depende de la zona.
	instante := time.Date(2024, time.June, 12, 1, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, entity.NewDate(2024, time.June, 11), entity.DateOf(instante))
}
