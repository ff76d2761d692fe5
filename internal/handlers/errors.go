package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidator returns a validator reporting fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct responds 400 with per-field messages when s is invalid.
// It returns handled=true when a response was written.
func validateStruct(c *fiber.Ctx, v *validator.Validate, s any) (bool, error) {
	err := v.Struct(s)
	if err == nil {
		return false, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return true, respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
	}
	errorMessages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// parseBody decodes the request body into out, answering 400 on failure.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	return false, nil
}

// paramID reads a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", models.ErrValidation, name, c.Params(name))
	}
	return uint(id), nil
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest, "Validation failed"
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, models.ErrAuthentication):
		return fiber.StatusUnauthorized, "Authentication failed"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status, message := statusFor(err)
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// ErrorHandler renders errors that escape handlers, including Fiber's own
// routing errors, in the same shape as handler responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"message": fe.Message,
			"error":   err.Error(),
		})
	}
	return respondError(c, err)
}
