package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/dto"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/service"
)

// OrdersHandler exposes order listing and mutation.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// List handles GET /Order.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.ListOrders(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, dto.OrderResponse{
			ID:            order.ID,
			OrderDate:     order.OrderDate,
			EmpNo:         order.EmpNo,
			TotalQuantity: order.TotalQuantity,
			Status:        string(order.Status),
		})
	}
	return c.JSON(resp)
}

// Update handles PUT /updateOrder.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == nil {
		return fiber.NewError(http.StatusBadRequest, "OrderID required")
	}

	input := service.OrderUpdateInput{
		OrderDate:     req.OrderDate,
		EmpNo:         req.EmpNo,
		TotalQuantity: req.TotalQuantity,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		input.Status = &status
	}
	if err := h.orders.UpdateOrder(c.UserContext(), *req.ID, input); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order updated successfully"})
}

// Delete handles DELETE /deleteOrder/:OrderID.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("OrderID")
	if err := h.orders.DeleteOrder(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
