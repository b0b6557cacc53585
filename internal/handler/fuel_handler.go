package handler

import (
	"go-fuelstation/internal/model"
	"go-fuelstation/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FuelHandler struct {
	service service.FuelService
}

func NewFuelHandler(s service.FuelService) *FuelHandler {
	return &FuelHandler{service: s}
}

// GET /api/v1/fuel-types
func (h *FuelHandler) GetFuelTypes(c *fiber.Ctx) error {
	fuelTypes, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fuelTypes)
}

// GET /api/v1/fuel-types/:id
func (h *FuelHandler) GetFuelType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fuel type ID"})
	}

	fuelType, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fuelType)
}

// POST /api/v1/fuel-types
func (h *FuelHandler) CreateFuelType(c *fiber.Ctx) error {
	var fuelType model.FuelType
	if err := c.BodyParser(&fuelType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	fuelType.ID = 0

	saved, err := h.service.Save(c.UserContext(), &fuelType)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(saved)
}

// PUT /api/v1/fuel-types/:id
func (h *FuelHandler) UpdateFuelType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fuel type ID"})
	}

	var fuelType model.FuelType
	if err := c.BodyParser(&fuelType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	fuelType.ID = id

	saved, err := h.service.Save(c.UserContext(), &fuelType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

// DELETE /api/v1/fuel-types/:id
func (h *FuelHandler) DeleteFuelType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fuel type ID"})
	}

	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
