package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/resources/controller"
)

func ResourceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceAdminController(db)

	// === ADMIN ROUTES (moderasi) ===
	admin := api.Group("/resources")
	admin.Get("/", ctrl.ListResources)            // 📄 Antrian moderasi
	admin.Get("/:id", ctrl.GetResource)           // 🔍 Detail + status lock
	admin.Post("/:id/lock", ctrl.AcquireLock)     // 🔒 Mulai sesi review
	admin.Delete("/:id/lock", ctrl.ReleaseLock)   // 🔓 Batal review
	admin.Post("/:id/approve", ctrl.Approve)      // ✅ Setujui + sinkron listing
	admin.Post("/:id/reject", ctrl.Reject)        // ⛔ Tolak dengan alasan
}
