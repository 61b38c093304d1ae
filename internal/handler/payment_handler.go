package handler

import (
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	validator      *utils.Validator
}

func NewPaymentHandler(paymentService *service.PaymentService, validator *utils.Validator) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	// Missing credentials win over a bad body.
	if err := h.paymentService.Ready(); err != nil {
		return err
	}

	req := models.NewCheckoutRequest()
	if err := bindAndValidate(c, h.validator, req); err != nil {
		return err
	}

	session, err := h.paymentService.CreateCheckoutSession(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(session)
}
