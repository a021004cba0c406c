package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationErrors renders validator failures as the field-level message list
// clients expect, using the per-handler message table.
func validationErrors(err error, messages map[string]string) []fiber.Map {
	out := []fiber.Map{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append(out, fiber.Map{"msg": err.Error()})
	}

	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}

		out = append(out, fiber.Map{"msg": msg, "param": fe.Field()})
	}

	return out
}

func serverError(c *fiber.Ctx, err error) error {
	slog.ErrorContext(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "server error"})
}
