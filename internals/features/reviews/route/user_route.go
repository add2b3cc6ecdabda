package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/reviews/controller"
)

func ReviewUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReviewController(db)

	user := api.Group("/reviews")
	user.Post("/", ctrl.CreateReview)      // ➕ Tulis review
	user.Delete("/:id", ctrl.DeleteReview) // 🗑️ Hapus review sendiri
}
