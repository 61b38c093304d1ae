package handler

import (
	"github.com/ascendia/ascendia-api/internal/errs"
	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const msgUnsupportedContentType = "Content-Type must be application/json"

type defaulter interface {
	ApplyDefaults()
}

// bindAndValidate decodes the JSON body into out, fills schema defaults and
// runs the validate tags. Every failure is a 422.
//
// A missing Content-Type is read as JSON; any other declared type is refused.
func bindAndValidate(c *fiber.Ctx, validator *utils.Validator, out any) error {
	if contentType := c.Get(fiber.HeaderContentType); contentType != "" && !utils.IsJSONContentType(contentType) {
		return errs.NewValidationError("Invalid request body", []errs.FieldError{
			{Field: "body", Error: msgUnsupportedContentType},
		})
	}

	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return errs.NewValidationError("Invalid request body", utils.FieldErrors(err))
	}

	if d, ok := out.(defaulter); ok {
		d.ApplyDefaults()
	}

	if fields := validator.Validate(out); fields != nil {
		return errs.NewValidationError("Validation failed", fields)
	}
	return nil
}
