package visitaRoutes

import (
	meGustaControllers "parqueaventura/controllers/megusta"
	visitaControllers "parqueaventura/controllers/visita"
	"parqueaventura/middleware"
	visitaValidators "parqueaventura/validators/visita"

	"github.com/gofiber/fiber/v2"
)

func SetupVisitaRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.AuthRequired, visitaControllers.Dashboard)

	app.Get("/visitas/nueva", middleware.AuthRequired, visitaControllers.NewForm)
	app.Post("/visitas/nueva", middleware.AuthRequired, visitaValidators.Create(), visitaControllers.Create)

	app.Get("/visitas/editar/:id", middleware.AuthRequired, visitaControllers.EditForm)
	app.Post("/visitas/editar/:id", middleware.AuthRequired, visitaControllers.Update)

	// Deletion happens on either verb, matching the original app
	app.Get("/visitas/eliminar/:id", middleware.AuthRequired, visitaControllers.Delete)
	app.Post("/visitas/eliminar/:id", middleware.AuthRequired, visitaControllers.Delete)

	app.Get("/visitas/ver/:id", middleware.AuthRequired, visitaControllers.View)

	app.Post("/visita/:id/me_gusta", middleware.AuthRequired, meGustaControllers.DarMeGusta)
}
