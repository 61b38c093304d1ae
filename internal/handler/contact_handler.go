package handler

import (
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *utils.Validator
}

func NewContactHandler(contactService *service.ContactService, validator *utils.Validator) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := bindAndValidate(c, h.validator, &msg); err != nil {
		return err
	}

	id, err := h.contactService.SubmitContact(c.UserContext(), &msg)
	if err != nil {
		return err
	}

	return c.JSON(models.SubmissionOK(id))
}
