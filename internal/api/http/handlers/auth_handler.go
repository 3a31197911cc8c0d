package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/service"
)

// AuthHandler exposes login, token verification and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	account, token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Status:   "ok",
		Position: string(account.Position),
		Token:    token,
	})
}

// VerifyToken handles POST /verify-token.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	token, ok := auth.BearerToken(c)
	if !ok {
		return auth.UnauthorizedError(&auth.VerificationError{Reason: auth.ReasonMissing})
	}

	claims, err := h.auth.VerifyToken(c.UserContext(), token)
	if err != nil {
		return auth.UnauthorizedError(err)
	}

	return c.JSON(dto.VerifyResponse{Status: "ok", Decoded: claims})
}

// Logout handles POST /logout. Succeeds even when the token is already
// revoked or expired.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := auth.BearerToken(c)
	if !ok {
		return auth.UnauthorizedError(&auth.VerificationError{Reason: auth.ReasonMissing})
	}

	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}
