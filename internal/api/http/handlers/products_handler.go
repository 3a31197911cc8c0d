package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/service"
)

// ProductsHandler exposes product listing and mutation.
type ProductsHandler struct {
	inventory *service.InventoryService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(inventory *service.InventoryService) *ProductsHandler {
	return &ProductsHandler{inventory: inventory}
}

// List handles GET /Product. Quantities are reconciled against live serial
// counts as a side effect of serving the listing.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.inventory.ListProducts(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, dto.ProductResponse{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: product.Quantity,
			Image:    product.Image,
		})
	}
	return c.JSON(resp)
}

// Create handles POST /createProduct.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	product := &domain.Product{
		ID:       req.ID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Image:    req.Image,
	}
	if err := h.inventory.CreateProduct(c.UserContext(), product); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product created successfully"})
}

// Update handles PUT /updateProduct.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == nil {
		return fiber.NewError(http.StatusBadRequest, "P_ID required")
	}

	input := service.ProductUpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Image:    req.Image,
	}
	if err := h.inventory.UpdateProduct(c.UserContext(), *req.ID, input); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

// Delete handles DELETE /deleteProduct/:P_ID.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("P_ID")
	if err := h.inventory.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
