package serverutils

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}

func ErrorResponse(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"message": message})
}

// MustJSON marshals a server-push payload for the SSE stream. A marshal
// failure (an unmarshalable value put on the channel) yields "{}" rather
// than an error, so the stream keeps running.
func MustJSON(v interface{}) string {
	body, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(body)
}
