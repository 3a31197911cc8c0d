package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/service"
)

// SerialsHandler exposes serialized stock item listing and mutation.
type SerialsHandler struct {
	inventory *service.InventoryService
}

// NewSerialsHandler constructs handler.
func NewSerialsHandler(inventory *service.InventoryService) *SerialsHandler {
	return &SerialsHandler{inventory: inventory}
}

// List handles GET /SerialNumber.
func (h *SerialsHandler) List(c *fiber.Ctx) error {
	details, err := h.inventory.ListSerials(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.SerialResponse, 0, len(details))
	for _, detail := range details {
		resp = append(resp, dto.SerialResponse{
			SerialNo:    detail.SerialNo,
			ProductID:   detail.ProductID,
			StorageID:   detail.StorageID,
			LastUpdated: detail.LastUpdated,
			ProductName: detail.ProductName,
			Image:       detail.Image,
			Location:    detail.Location,
		})
	}
	return c.JSON(resp)
}

// Create handles POST /createSerial.
func (h *SerialsHandler) Create(c *fiber.Ctx) error {
	var req dto.SerialCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.SerialNo == "" {
		return fiber.NewError(http.StatusBadRequest, "Serial_No is required")
	}

	var lastUpdated time.Time
	if req.LastUpdated != nil {
		lastUpdated = *req.LastUpdated
	}
	serial := &domain.SerialNumber{
		SerialNo:    req.SerialNo,
		ProductID:   req.ProductID,
		StorageID:   req.StorageID,
		LastUpdated: lastUpdated,
	}
	if err := h.inventory.CreateSerial(c.UserContext(), serial); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "SerialNumber created successfully"})
}

// Update handles PUT /updateSerialNumber.
func (h *SerialsHandler) Update(c *fiber.Ctx) error {
	var req dto.SerialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.SerialNo == nil {
		return fiber.NewError(http.StatusBadRequest, "Serial_No required")
	}

	input := service.SerialUpdateInput{
		ProductID:   req.ProductID,
		StorageID:   req.StorageID,
		LastUpdated: req.LastUpdated,
	}
	if err := h.inventory.UpdateSerial(c.UserContext(), *req.SerialNo, input); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "SerialNumber updated successfully"})
}

// Delete handles DELETE /deleteItem/:Serial_No.
func (h *SerialsHandler) Delete(c *fiber.Ctx) error {
	serialNo := c.Params("Serial_No")
	if err := h.inventory.DeleteSerial(c.UserContext(), serialNo); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}
