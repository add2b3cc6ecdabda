package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/controller"
)

func BookingUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	user := api.Group("/bookings")
	user.Post("/", ctrl.CreateBooking)      // ➕ Booking + snap token
	user.Get("/", ctrl.ListMyBookings)      // 📄 Booking milik sendiri
	user.Delete("/:id", ctrl.CancelBooking) // ❌ Batalkan (pending saja)
}
