// Package common holds the response helpers shared by all route groups.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate is the shared validator instance used by the request DTOs.
var Validate = validator.New()

// MessageResponse is the envelope for single-message replies, success and
// failure alike.
type MessageResponse struct {
	Message string `json:"message"`
}

// MessageJSON writes a {"message": ...} body with the given status.
func MessageJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// ValidationJSON writes the 422 reply: a bare JSON array with one
// human-readable message per failed field.
func ValidationJSON(c *fiber.Ctx, messages []string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(messages)
}

// ValidationMessages translates a validator error into per-field messages,
// preserving field order. Fields without an entry in messages fall back to
// the raw validator error.
func ValidationMessages(err error, messages map[string]string) []string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verr))
	for _, fe := range verr {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Error())
		}
	}
	return out
}
