package dto

import "time"

// SerialCreateRequest payload for new serialized items.
type SerialCreateRequest struct {
	SerialNo    string     `json:"Serial_No"`
	ProductID   string     `json:"P_ID"`
	StorageID   *string    `json:"S_ID"`
	LastUpdated *time.Time `json:"LastUpdated"`
}

// SerialUpdateRequest payload for partial serial updates. The serial number
// is the record key, never an assignable field.
type SerialUpdateRequest struct {
	SerialNo    *string    `json:"Serial_No"`
	ProductID   *string    `json:"P_ID"`
	StorageID   *string    `json:"S_ID"`
	LastUpdated *time.Time `json:"LastUpdated"`
}

// SerialResponse is a joined serial listing row.
type SerialResponse struct {
	SerialNo    string    `json:"Serial_No"`
	ProductID   string    `json:"P_ID"`
	StorageID   *string   `json:"S_ID"`
	LastUpdated time.Time `json:"LastUpdated"`
	ProductName string    `json:"P_Name"`
	Image       string    `json:"image"`
	Location    *string   `json:"Location"`
}
