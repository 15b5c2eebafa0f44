package handler

import (
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/database"
	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	status := "healthy"
	code := fiber.StatusOK

	sqlDB, err := database.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "disconnected"
		status = "unhealthy"
		code = fiber.StatusInternalServerError
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"service":   "Kamala Housekeeping Management API",
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
