package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromLocals mengambil user_id (int) yang di-set AuthMiddleware.
// Return 0 + error kalau tidak ada (mis. route tanpa middleware auth).
func GetUserIDFromLocals(c *fiber.Ctx) (int, error) {
	if v, ok := c.Locals("user_id").(int); ok && v > 0 {
		return v, nil
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
}

func GetUserRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}
