package domain

import "time"

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a customer order handled by an employee.
type Order struct {
	ID            string
	OrderDate     time.Time
	EmpNo         *int64
	TotalQuantity int64
	Status        OrderStatus
}
