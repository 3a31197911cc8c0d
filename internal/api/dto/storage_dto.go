package dto

// StorageResponse is a storage location listing row.
type StorageResponse struct {
	ID       string `json:"S_ID"`
	Location string `json:"Location"`
}
