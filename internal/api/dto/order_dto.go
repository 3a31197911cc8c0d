package dto

import "time"

// OrderUpdateRequest payload for partial order updates.
type OrderUpdateRequest struct {
	ID            *string    `json:"OrderID"`
	OrderDate     *time.Time `json:"Order_date"`
	EmpNo         *int64     `json:"Empno"`
	TotalQuantity *int64     `json:"Total_Quantity"`
	Status        *string    `json:"Status"`
}

// OrderResponse is an order listing row.
type OrderResponse struct {
	ID            string    `json:"OrderID"`
	OrderDate     time.Time `json:"Order_date"`
	EmpNo         *int64    `json:"Empno"`
	TotalQuantity int64     `json:"Total_Quantity"`
	Status        string    `json:"Status"`
}
