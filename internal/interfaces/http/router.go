package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barf-backoffice/internal/application/pricing"
	"github.com/tu-usuario/barf-backoffice/internal/application/stock"
	"github.com/tu-usuario/barf-backoffice/internal/application/usecase"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

// Roles de la aplicación, tal como vienen en el claim del token.
const (
	RoleAdmin       = "admin"
	RoleOperaciones = "operaciones"
	RoleVentas      = "ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver   *pricing.Resolver
	OrderTotal *pricing.OrderTotalCalculator
	Reconciler *stock.Reconciler
	Rollover   *stock.Rollover
	CatalogUC  *usecase.CatalogUseCase
	StockRepo  repository.StockCounterRepository
	BizLoc     *time.Location
	JWTSecret  string
}

// Router registra las rutas de la API. Todo va detrás del Bearer Token; la
// reconciliación y el rollover requieren además rol de operaciones o admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Pricing
	pricingHandler := NewPricingHandler(deps.Resolver, deps.OrderTotal, deps.BizLoc)
	pricingGroup := api.Group("/pricing")
	pricingGroup.Post("/resolve", pricingHandler.ResolvePrice)
	pricingGroup.Post("/order-total", pricingHandler.OrderTotal)

	// Stock
	stockHandler := NewStockHandler(deps.Reconciler, deps.Rollover, deps.StockRepo, deps.BizLoc)
	stockGroup := api.Group("/stock")
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/reconcile", RequireRole(RoleAdmin, RoleOperaciones), stockHandler.Reconcile)
	stockGroup.Post("/rollover-sweep", RequireRole(RoleAdmin, RoleOperaciones), stockHandler.RolloverSweep)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/products", catalogHandler.List)
	catalogGroup.Post("/reload", RequireRole(RoleAdmin, RoleOperaciones), catalogHandler.Reload)
}
