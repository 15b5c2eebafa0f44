package main

import (
	"log"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/config"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/database"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/handler"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/router"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	if cfg.JWTSecret != "" {
		helper.JwtSecret = []byte(cfg.JWTSecret)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("CORS_ORIGIN"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	store.Rooms = store.NewGormRoomStore(database.DB)
	store.Logs = store.NewGormLogStore(database.DB)
	store.Syncs = store.NewGormSyncStore(database.DB)

	handler.Init(cfg)
	router.SetupRoutes(app)

	log.Fatal(app.Listen(":5000"))
}
