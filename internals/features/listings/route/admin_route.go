package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/listings/controller"
)

func ListingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewListingController(db)

	admin := api.Group("/listings")
	admin.Patch("/:id", ctrl.UpdateListing)  // ✏️ Edit listing terbit
	admin.Delete("/:id", ctrl.DeleteListing) // 🗑️ Soft delete
}
