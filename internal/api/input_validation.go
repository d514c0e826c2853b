package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// decodeBody parses and validates a JSON payload, returning a
// user-visible message on failure and "" on success.
func (handler *Handler) decodeBody(c *fiber.Ctx, dest any) string {
	if err := c.BodyParser(dest); err != nil {
		return "invalid input"
	}

	if err := handler.validate.Struct(dest); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return validationMessage(fieldErrors[0])
		}
		return "invalid input"
	}
	return ""
}

func validationMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field()[:1]) + fieldError.Field()[1:]
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
