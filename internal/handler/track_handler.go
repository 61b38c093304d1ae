package handler

import (
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type TrackHandler struct {
	trackService *service.TrackService
	validator    *utils.Validator
}

func NewTrackHandler(trackService *service.TrackService, validator *utils.Validator) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
		validator:    validator,
	}
}

func (h *TrackHandler) Track(c *fiber.Ctx) error {
	var event models.TrackEvent
	if err := bindAndValidate(c, h.validator, &event); err != nil {
		return err
	}

	id, err := h.trackService.TrackEvent(c.UserContext(), &event)
	if err != nil {
		return err
	}

	return c.JSON(models.SubmissionOK(id))
}
