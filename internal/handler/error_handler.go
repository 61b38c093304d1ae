package handler

import (
	"errors"

	"github.com/ascendia/ascendia-api/internal/errs"
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler is the single place where errors become response bodies.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		httpErr := toHTTPError(err)

		if httpErr.Status >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("path", c.Path()),
				zap.String("code", httpErr.Code),
				zap.Error(err),
			)
		}

		return c.Status(httpErr.Status).JSON(models.ErrorResponse(httpErr))
	}
}

func toHTTPError(err error) *errs.HTTPError {
	if httpErr, ok := errs.As(err); ok {
		return httpErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errs.FromStatus(fiberErr.Code, fiberErr.Message)
	}

	return &errs.HTTPError{
		Code:    errs.CodeServer,
		Message: internalErrorMessage,
		Status:  fiber.StatusInternalServerError,
		Err:     err,
	}
}
