package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"tripku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recover paling luar supaya panic di handler mana pun tetap jadi 500,
// bukan koneksi putus).
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true, // stack trace ke log, bukan ke response
	}))
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
