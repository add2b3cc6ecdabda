package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/resources/controller"
)

func ResourceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceUserController(db)

	user := api.Group("/resources")
	user.Post("/", ctrl.CreateResource)  // ➕ Submit media
	user.Get("/", ctrl.ListMyResources)  // 📄 Submission milik sendiri
}
