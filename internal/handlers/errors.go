package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"messageboard/internal/repositories"
	"messageboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// requestContext bounds store calls made on behalf of c.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}

// respondError maps service and repository errors to an HTTP response.
// resource names the entity in client-facing messages, e.g. "Message".
func respondError(c *fiber.Ctx, err error, resource, id, action string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := fiber.Map{"message": validationErr.Message}
		if len(validationErr.Fields) > 0 {
			body["errors"] = validationErr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, repositories.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid " + resource + " ID",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": resource + " with ID " + id + " not found",
		})
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("Timed out trying to %s: %v", action, err)
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"message": "Could not " + action,
		})
	default:
		log.Printf("Error trying to %s: %v", action, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not " + action,
		})
	}
}

func badBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
