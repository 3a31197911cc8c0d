package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/service"
)

// StorageHandler exposes storage location listing.
type StorageHandler struct {
	inventory *service.InventoryService
}

// NewStorageHandler constructs handler.
func NewStorageHandler(inventory *service.InventoryService) *StorageHandler {
	return &StorageHandler{inventory: inventory}
}

// List handles GET /Storage.
func (h *StorageHandler) List(c *fiber.Ctx) error {
	locations, err := h.inventory.ListStorage(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.StorageResponse, 0, len(locations))
	for _, location := range locations {
		resp = append(resp, dto.StorageResponse{
			ID:       location.ID,
			Location: location.Location,
		})
	}
	return c.JSON(resp)
}
