package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	user := api.Group("/notifications")
	user.Get("/", ctrl.ListMyNotifications) // 📄 Notifikasi sendiri (?unread=true)
	user.Post("/:id/read", ctrl.MarkRead)   // ✔️ Tandai dibaca
}
