package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/controller"
)

func BookingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	admin := api.Group("/bookings")
	admin.Get("/", ctrl.ListAllBookings) // 📄 Semua booking (+filter status)
}
