package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorBody is the payload inside the uniform error envelope. Every
// failure leaving the API looks like {"error":{"code","message"[,"errors"]}}.
type errorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func dataResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": errorBody{Code: status, Message: message}})
}

func fieldErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": errorBody{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "validation errors",
			Errors:  fields,
		},
	})
}

// validationResponse renders a validator.ValidationErrors as the 422
// field-error envelope.
func validationResponse(c *fiber.Ctx, err error) error {
	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range verrs {
			fields[strings.ToLower(e.Field())] = fmt.Sprintf("failed on the '%s' rule", e.Tag())
		}
	}
	return fieldErrorResponse(c, fields)
}
