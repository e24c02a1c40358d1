package main

import (
	"log"

	"trainhub/config"
	controllers "trainhub/controllers/course"
	"trainhub/database"
	"trainhub/middleware"
	courseRoutes "trainhub/routers/courseRoutes"
	"trainhub/services/courseModule"
	"trainhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	appLogger, err := utils.NewLogger(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	database.ConnectDb()

	app := fiber.New(fiber.Config{AppName: "trainhub"})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			appLogger.Error("health check failed", zap.Error(err))
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "database unavailable", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})

	moduleService := courseModule.NewService(courseModule.NewGormRepository(database.Database.Db), appLogger)
	courseRoutes.SetupCourseModuleRoutes(app, controllers.NewCourseModuleController(moduleService))

	appLogger.Info("server starting", zap.String("port", config.AppConfig.Port), zap.String("db_driver", config.AppConfig.DBDriver))
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		appLogger.Fatal("server stopped", zap.Error(err))
	}
}
