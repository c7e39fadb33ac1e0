// Package scheduler dispara el barrido de rollover en forma periódica, siempre
// en la zona horaria del negocio.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tu-usuario/barf-backoffice/internal/application/stock"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// RolloverScheduler corre el barrido cada N minutos. El barrido es idempotente
// (nunca pisa planillas existentes), así que un disparo de más es inocuo; aun
// así se saltea el tick si el anterior sigue corriendo.
type RolloverScheduler struct {
	rollover *stock.Rollover
	loc      *time.Location
	every    int
	log      *logger.Logger
	cron     *cron.Cron
	running  atomic.Bool
}

// New construye el scheduler. everyMinutes define la cadencia del barrido.
func New(rollover *stock.Rollover, loc *time.Location, everyMinutes int, log *logger.Logger) *RolloverScheduler {
	if everyMinutes <= 0 {
		everyMinutes = 5
	}
	return &RolloverScheduler{
		rollover: rollover,
		loc:      loc,
		every:    everyMinutes,
		log:      log,
		cron:     cron.New(cron.WithLocation(loc)),
	}
}

// Start registra la entrada cron y arranca el loop en background.
func (s *RolloverScheduler) Start(ctx context.Context) error {
	spec := fmt.Sprintf("*/%d * * * *", s.every)
	_, err := s.cron.AddFunc(spec, func() { s.tick(ctx) })
	if err != nil {
		return fmt.Errorf("registrar cron %q: %w", spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("cadencia", spec).Str("zona", s.loc.String()).Msg("scheduler de rollover iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine el tick en curso.
func (s *RolloverScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler de rollover detenido")
}

func (s *RolloverScheduler) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn().Msg("barrido anterior todavía en curso, tick salteado")
		return
	}
	defer s.running.Store(false)

	now := time.Now().In(s.loc)
	result, err := s.rollover.RunSweep(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de rollover falló")
		return
	}
	if result.LocationsProcessed > 0 || result.RowsCreated > 0 {
		s.log.Info().
			Int("sedes", result.LocationsProcessed).
			Int("filas_creadas", result.RowsCreated).
			Strs("sedes_con_error", result.FailedLocations).
			Msg("barrido de rollover completo")
	}
}
