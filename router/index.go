package router

import (
	"github.com/conchimbubam/Kamala-housekeeping-managerment/handler"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/middleware"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	api.Get("/user-info", middleware.Protected(), handler.UserInfo)

	rooms := api.Group("/rooms", logger.New())
	rooms.Get("/", middleware.Protected(), handler.GetRooms)
	rooms.Get("/search", middleware.Protected(), handler.SearchRooms)
	rooms.Get("/status/:status", middleware.Protected(), handler.GetRoomsByStatus)
	rooms.Post("/update", middleware.Protected(), middleware.RequireHK(), validate.UpdateRoom(), handler.UpdateRoom)
	rooms.Post("/hk-quick-update", middleware.Protected(), middleware.RequireHK(), validate.QuickUpdate(), handler.HkQuickUpdate)
	rooms.Get("/:roomNo", middleware.Protected(), validate.RoomNoParam("roomNo"), handler.GetRoomDetail)

	api.Get("/statistics", middleware.Protected(), handler.GetStatistics)
	api.Get("/floors", middleware.Protected(), handler.GetFloors)
	api.Get("/file-info", middleware.Protected(), handler.GetFileInfo)
	api.Get("/tasksheet", middleware.Protected(), handler.GetTasksheet)

	api.Post("/refresh", middleware.Protected(), middleware.RequireFO(), handler.RefreshData)

	report := api.Group("/report", logger.New())
	report.Get("/hk", middleware.Protected(), handler.GetHkReport)
	report.Get("/hk/export", middleware.Protected(), handler.ExportHkReport)
	report.Get("/hk/room/:roomNo", middleware.Protected(), validate.RoomNoParam("roomNo"), handler.GetRoomHistory)
	report.Post("/hk/clear", middleware.Protected(), middleware.RequireFO(), handler.ClearHkReport)

	backup := api.Group("/backup", logger.New())
	backup.Post("/create", middleware.Protected(), middleware.RequireFO(), handler.ManualBackup)
	backup.Get("/list", middleware.Protected(), middleware.RequireFO(), handler.ListBackups)
	backup.Post("/restore", middleware.Protected(), middleware.RequireFO(), handler.RestoreBackup)

	api.Get("/health", handler.HealthCheck)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/rooms", websocket.New(handler.RoomsWebsocket))
}
