package middleware

import (
	"encoding/json"

	"exam-admin/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const bodyLocalsKey = "validated_body"

// JSONBody decodes the request body into a JSON object before the handler runs.
// Malformed or non-object bodies are rejected as validation errors.
func JSONBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validation.DecodeBody(c.Body())
		if err != nil {
			return err // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals(bodyLocalsKey, body)
		return c.Next()
	}
}

// Body returns the object decoded by JSONBody, decoding on demand when the middleware did not run.
func Body(c *fiber.Ctx) (map[string]json.RawMessage, error) {
	if body, ok := c.Locals(bodyLocalsKey).(map[string]json.RawMessage); ok {
		return body, nil
	}
	return validation.DecodeBody(c.Body())
}
