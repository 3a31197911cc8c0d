package domain

// StorageLocation is a physical storage slot serial items can be assigned to.
type StorageLocation struct {
	ID       string
	Location string
}
