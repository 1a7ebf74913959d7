package authRoutes

import (
	authControllers "parqueaventura/controllers/auth"
	authValidators "parqueaventura/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/register", authControllers.RegisterForm)
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Get("/login", authControllers.LoginForm)
	app.Post("/login", authControllers.Login)
	app.Get("/logout", authControllers.Logout)
}
