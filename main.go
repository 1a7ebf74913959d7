package main

import (
	"log"

	"parqueaventura/config"
	"parqueaventura/database"
	"parqueaventura/middleware"
	authRoutes "parqueaventura/routers/authRoutes"
	visitaRoutes "parqueaventura/routers/visitaRoutes"
	"parqueaventura/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	middleware.InitSessionStore()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Bienvenido a Parque Aventura", nil)
	})

	authRoutes.SetupAuthRoutes(app)
	visitaRoutes.SetupVisitaRoutes(app)

	utils.InitializeLikeSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
