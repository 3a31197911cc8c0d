package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/service"
)

// AccountsHandler exposes user account CRUD.
type AccountsHandler struct {
	auth *service.AuthService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(authService *service.AuthService) *AccountsHandler {
	return &AccountsHandler{auth: authService}
}

// List handles GET /UserAccount. Credential digests never leave the server.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.auth.ListAccounts(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		resp = append(resp, dto.AccountResponse{
			ID:       account.ID,
			Username: account.Username,
			Position: string(account.Position),
		})
	}
	return c.JSON(resp)
}

// Create handles POST /createUserAccount.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	var req dto.AccountCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	if _, err := h.auth.CreateAccount(c.UserContext(), req.Username, req.Password, domain.Position(req.Position)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "UserAccount created successfully"})
}

// Update handles PUT /updateUserAccount.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	var req dto.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == nil {
		return fiber.NewError(http.StatusBadRequest, "id required")
	}

	input := service.AccountUpdateInput{
		Username: req.Username,
		Password: req.Password,
		Position: req.Position,
	}
	if err := h.auth.UpdateAccount(c.UserContext(), *req.ID, input); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "UserAccount updated successfully"})
}

// Delete handles DELETE /deleteUser/:id.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	if err := h.auth.DeleteAccount(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "UserAccount deleted successfully"})
}
