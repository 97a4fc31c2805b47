package util

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/config"
)

// ErrorBody is the wire shape of every failure: a message, plus the first
// offending field for validation errors. DevMessage carries the wrapped
// cause outside production only.
type ErrorBody struct {
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorResponse converts a taxonomy error into a JSON failure response.
// Client errors (400/404) expose their own message; upstream and store
// failures are logged and replaced by the handler-supplied fallback so no
// internal detail leaks.
func ErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	code := apperror.StatusCode(err)

	body := ErrorBody{Message: err.Error()}
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		body.Message = verr.Message
		body.Field = verr.Field
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("request failed: %v", err)
		body.Message = fallback
		if body.Message == "" {
			body.Message = "Internal Server Error"
		}
		body.Field = ""
		if config.LoadAppConfig().Env != "production" {
			body.DevMessage = err.Error()
		}
	}

	return c.Status(code).JSON(body)
}
