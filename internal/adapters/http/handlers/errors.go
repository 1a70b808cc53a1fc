package handlers

import (
	"errors"
	"strconv"

	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/pkg/logger"
	"hrms-lite/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps a service error onto a detail response
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return response.Unprocessable(c, fieldErr.Message)
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrEmployeeCodeTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAttendanceExists):
		return response.Conflict(c, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Path()).Msg(fallback)
		return response.InternalServerError(c, fallback)
	}
}

// pathID parses the :id route parameter
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
