package handler

import (
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

const (
	rootMessage  = "Ascendia API running"
	helloMessage = "Hello from the Ascendia backend API!"
)

type SystemHandler struct {
	statusService *service.StatusService
}

func NewSystemHandler(statusService *service.StatusService) *SystemHandler {
	return &SystemHandler{
		statusService: statusService,
	}
}

func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: rootMessage})
}

func (h *SystemHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: helloMessage})
}

// Status always answers 200; problems are described inside the report.
func (h *SystemHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.statusService.Report(c.UserContext()))
}
