package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonValidatorError meneruskan error validator.v10 sebagai 422 per-field.
func JsonValidatorError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
