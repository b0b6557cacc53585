package handler

import (
	"go-fuelstation/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// RecordTransactionRequest carries litres or value; if both are sent the
// litres are used.
type RecordTransactionRequest struct {
	PumpID uint             `json:"pump_id"`
	Litres *decimal.Decimal `json:"litres"`
	Value  *decimal.Decimal `json:"value"`
}

// GetTransactions lists the history, most recent first
// GET /api/v1/transactions
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(transactions)
}

// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// CreateTransaction records a fueling
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req RecordTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	quantity, err := service.QuantityOf(req.Litres, req.Value)
	if err != nil {
		return respondError(c, err)
	}

	tx, err := h.service.Record(c.UserContext(), req.PumpID, quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(tx)
}

// DeleteTransaction succeeds whether or not the transaction existed
// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
