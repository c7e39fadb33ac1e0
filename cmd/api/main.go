package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/barf-backoffice/internal/application/pricing"
	"github.com/tu-usuario/barf-backoffice/internal/application/stock"
	"github.com/tu-usuario/barf-backoffice/internal/application/usecase"
	"github.com/tu-usuario/barf-backoffice/internal/infrastructure/postgres"
	"github.com/tu-usuario/barf-backoffice/internal/infrastructure/scheduler"
	httpRouter "github.com/tu-usuario/barf-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/barf-backoffice/pkg/config"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	bizLoc := cfg.Business.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("zona", bizLoc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	priceRepo := postgres.NewPriceRecordRepository(pool)
	catalogRepo := postgres.NewCatalogProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	stockRepo := postgres.NewStockCounterRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := pricing.NewResolver(priceRepo, log)
	orderTotal := pricing.NewOrderTotalCalculator(resolver, log)
	reconciler := stock.NewReconciler(stockRepo, orderRepo, txRunner, log)
	rollover := stock.NewRollover(locationRepo, stockRepo, orderRepo, txRunner, log)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, log)

	// Carga inicial del catálogo: sin snapshot no hay matching ni totales.
	if err := catalogUC.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del catálogo")
	}

	rolloverSched := scheduler.New(rollover, bizLoc, cfg.Business.RolloverSweepMinutes, log)
	if err := rolloverSched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("arranque del scheduler de rollover")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Resolver:   resolver,
		OrderTotal: orderTotal,
		Reconciler: reconciler,
		Rollover:   rollover,
		CatalogUC:  catalogUC,
		StockRepo:  stockRepo,
		BizLoc:     bizLoc,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	rolloverSched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
