package domain

// Product is the aggregate for a stocked product line.
//
// Quantity is derived: the authoritative value is the count of SerialNumber
// rows referencing this product. The stored column is a cache refreshed by the
// reconciler when the product listing is served.
type Product struct {
	ID       string
	Name     string
	Quantity int64
	Image    string
}
