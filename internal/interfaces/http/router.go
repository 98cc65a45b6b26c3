package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flipcam/flipcam-api/internal/application/auth"
	"github.com/flipcam/flipcam-api/internal/application/finanzas"
	"github.com/flipcam/flipcam-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovimientoUC *usecase.MovimientoUseCase
	InventarioUC *usecase.InventarioUseCase
	KPIUC        *finanzas.KPIUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): registro, login y bridge de sesión del navegador
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/session", authHandler.Session)

	// Rutas protegidas (requieren sesión: Bearer o cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos de caja (protegido; id de PUT/DELETE viaja en el cuerpo)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Put("/", movimientoHandler.Update)
	movimientos.Delete("/", movimientoHandler.Delete)

	// Inventario (protegido)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.List)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Put("/", inventarioHandler.Update)
	inventario.Delete("/", inventarioHandler.Delete)

	// KPIs (protegido, solo lectura)
	kpiHandler := NewKPIHandler(deps.KPIUC)
	protected.Get("/kpis", kpiHandler.Get)
}
