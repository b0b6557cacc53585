package handler

import (
	"go-fuelstation/internal/model"
	"go-fuelstation/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PumpHandler struct {
	service service.PumpService
}

func NewPumpHandler(s service.PumpService) *PumpHandler {
	return &PumpHandler{service: s}
}

// GET /api/v1/pumps
func (h *PumpHandler) GetPumps(c *fiber.Ctx) error {
	pumps, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(pumps)
}

// GET /api/v1/pumps/:id
func (h *PumpHandler) GetPump(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pump ID"})
	}

	pump, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pump)
}

// CreatePump expects {"name": ..., "fuel_type": {"id": ...}}
// POST /api/v1/pumps
func (h *PumpHandler) CreatePump(c *fiber.Ctx) error {
	var pump model.Pump
	if err := c.BodyParser(&pump); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	pump.ID = 0

	saved, err := h.service.Save(c.UserContext(), &pump)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(saved)
}

// UpdatePump replaces the whole pump
// PUT /api/v1/pumps/:id
func (h *PumpHandler) UpdatePump(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pump ID"})
	}

	var pump model.Pump
	if err := c.BodyParser(&pump); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	pump.ID = id

	saved, err := h.service.Save(c.UserContext(), &pump)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

// DELETE /api/v1/pumps/:id
func (h *PumpHandler) DeletePump(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pump ID"})
	}

	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
