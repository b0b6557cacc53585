package handler

import (
	"go-fuelstation/internal/model"
	"go-fuelstation/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessionService service.SessionService
}

func NewAuthHandler(sessionService service.SessionService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Login checks the credentials and returns a token plus the credential
// without its password
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	response, err := h.sessionService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// Register creates a credential; the role defaults to OPERATOR
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Role == "" {
		req.Role = model.RoleOperator
	}

	credential, err := h.sessionService.Register(c.UserContext(), req.Username, req.Password, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(credential.Public())
}
