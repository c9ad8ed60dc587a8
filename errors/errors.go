package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, data interface{}) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

// RaiseUpstreamError reports a failed call to the booking backend.
func RaiseUpstreamError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusBadGateway, "backend request failed", data)
}

// RaiseValidationError returns field-keyed messages for a rejected form step.
func RaiseValidationError(context *fiber.Ctx, fields interface{}) error {
	return RaiseError(context, fiber.StatusBadRequest, "validation failed", fields)
}
