package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SoftwareUC *usecase.SoftwareUseCase
	ModuleUC   *usecase.ModuleUseCase
	EntityUC   *usecase.EntityUseCase
	ResellerUC *usecase.ResellerUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Software
	software := api.Group("/software")
	softwareHandler := NewSoftwareHandler(deps.SoftwareUC)
	software.Post("/", softwareHandler.Create)
	software.Get("/", softwareHandler.List)
	software.Get("/:id", softwareHandler.GetByID)
	software.Put("/:id", softwareHandler.Update)
	software.Put("/:id/status", softwareHandler.UpdateStatus)
	software.Put("/:id/name", softwareHandler.UpdateName)
	software.Delete("/:id", softwareHandler.Delete)

	// Modules (by-software antes de /:id)
	modules := api.Group("/modules")
	moduleHandler := NewModuleHandler(deps.ModuleUC)
	modules.Post("/", moduleHandler.Create)
	modules.Get("/", moduleHandler.List)
	modules.Get("/by-software/:id", moduleHandler.ListBySoftware)
	modules.Get("/:id", moduleHandler.GetByID)
	modules.Put("/:id", moduleHandler.Update)
	modules.Put("/:id/status", moduleHandler.UpdateStatus)
	modules.Put("/:id/name", moduleHandler.UpdateName)
	modules.Delete("/:id", moduleHandler.Delete)

	// Organizational entities
	entities := api.Group("/entities")
	entityHandler := NewEntityHandler(deps.EntityUC)
	entities.Post("/", entityHandler.Create)
	entities.Get("/", entityHandler.List)
	entities.Get("/:id", entityHandler.GetByID)
	entities.Put("/:id", entityHandler.Update)
	entities.Put("/:id/status", entityHandler.UpdateStatus)
	entities.Put("/:id/name", entityHandler.UpdateName)
	entities.Put("/:id/address", entityHandler.UpdateAddress)
	entities.Put("/:id/phone", entityHandler.UpdatePhone)
	entities.Put("/:id/type", entityHandler.UpdateType)
	entities.Delete("/:id", entityHandler.Delete)

	// Resellers
	resellers := api.Group("/resellers")
	resellerHandler := NewResellerHandler(deps.ResellerUC)
	resellers.Post("/", resellerHandler.Create)
	resellers.Get("/", resellerHandler.List)
	resellers.Get("/by-entity/:id", resellerHandler.ListByEntity)
	resellers.Get("/:id", resellerHandler.GetByID)
	resellers.Put("/:id", resellerHandler.Update)
	resellers.Put("/:id/status", resellerHandler.UpdateStatus)
	resellers.Delete("/:id", resellerHandler.Delete)
}
