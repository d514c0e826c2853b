package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the cause and answers with a generic message so
// nothing internal leaks to the client.
func (handler *Handler) internalError(c *fiber.Ctx, err error, context string) error {
	handler.logger.Error().Err(err).Str("path", c.Path()).Msg(context)
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}
