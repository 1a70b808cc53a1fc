package response

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error payload understood by the console
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OK sends data as a bare JSON document
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NoContent sends a 204 response
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(ErrorBody{Detail: detail})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusBadRequest, detail)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusNotFound, detail)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusConflict, detail)
}

// Unprocessable sends a 422 validation failure response
func Unprocessable(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusUnprocessableEntity, detail)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusInternalServerError, detail)
}
