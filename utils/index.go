package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// SuccessMessage như SuccessResponse nhưng trả message thay vì payload
func SuccessMessage(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{
		"success":   true,
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func Ptr[T any](v T) *T {
	return &v
}
