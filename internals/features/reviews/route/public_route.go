package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/reviews/controller"
)

func ReviewPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReviewController(db)

	public := api.Group("/reviews")
	public.Get("/by-listing/:listingId", ctrl.GetReviewsByListing) // 📄 Review + rata-rata
}
