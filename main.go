package main

import (
	"log"

	"github.com/AshleyImmanuel/recovery-log/config"
	"github.com/AshleyImmanuel/recovery-log/database"
	authRoutes "github.com/AshleyImmanuel/recovery-log/routers/authRoutes"
	courseRoutes "github.com/AshleyImmanuel/recovery-log/routers/courseRoutes"
	paymentRoutes "github.com/AshleyImmanuel/recovery-log/routers/paymentRoutes"
	supportRoutes "github.com/AshleyImmanuel/recovery-log/routers/supportRoutes"
	"github.com/AshleyImmanuel/recovery-log/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	paymentRoutes.SetupAdminPaymentRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.InitializeDuplicateAudit()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
