package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/listings/controller"
)

func ListingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewListingController(db)

	public := api.Group("/listings")
	public.Get("/", ctrl.GetAllListings)    // 📄 Katalog publik
	public.Get("/:id", ctrl.GetListingByID) // 🔍 Detail
}
