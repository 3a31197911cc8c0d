package domain

import "time"

// SerialNumber is a single serialized stock item. Its existence is the source
// of truth for the owning product's quantity.
type SerialNumber struct {
	SerialNo    string
	ProductID   string
	StorageID   *string
	LastUpdated time.Time
}

// SerialNumberDetail is the joined listing row: the serial plus its product
// name, product image and (optional) storage location.
type SerialNumberDetail struct {
	SerialNumber
	ProductName string
	Image       string
	Location    *string
}
