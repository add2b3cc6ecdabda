// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/constants"
	bookingRoute "tripku_backend/internals/features/bookings/route"
	listingRoute "tripku_backend/internals/features/listings/route"
	notificationRoute "tripku_backend/internals/features/notifications/route"
	resourceRoute "tripku_backend/internals/features/resources/route"
	reviewRoute "tripku_backend/internals/features/reviews/route"
	authMiddleware "tripku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	listingRoute.ListingPublicRoutes(public, db)
	reviewRoute.ReviewPublicRoutes(public, db)
	bookingRoute.BookingPublicRoutes(public, db) // webhook Midtrans

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	resourceRoute.ResourceUserRoutes(user, db)
	bookingRoute.BookingUserRoutes(user, db)
	reviewRoute.ReviewUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.AdminAndAbove...),
	)
	resourceRoute.ResourceAdminRoutes(admin, db)
	listingRoute.ListingAdminRoutes(admin, db)
	bookingRoute.BookingAdminRoutes(admin, db)
}
