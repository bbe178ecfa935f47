package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Semua handler membalas lewat amplop JSON yang sama:
// {code, status, message} plus data (sukses) atau errors (validasi).

func respond(c *fiber.Ctx, code int, status, message string, extra fiber.Map) error {
	body := fiber.Map{
		"code":    code,
		"status":  status,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return respond(c, code, "success", message, fiber.Map{"data": data})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return respond(c, code, "error", message, nil)
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return respond(c, code, "error", message, fiber.Map{"errors": details})
}

// ValidationError meratakan validator.ValidationErrors jadi map field→tag
// supaya client tahu field mana yang gagal dan kenapa.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", fields)
}
