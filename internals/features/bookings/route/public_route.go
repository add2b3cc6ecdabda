package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/controller"
)

func BookingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	// Webhook Midtrans — tidak pakai auth middleware.
	api.Post("/bookings/notification", ctrl.PaymentNotification)
}
