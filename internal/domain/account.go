package domain

// Position enumerates roles an account can hold within the warehouse.
type Position string

const (
	PositionManager  Position = "Manager"
	PositionEmployee Position = "Employee"
)

// UserAccount is the domain model for operators who sign in to the system.
type UserAccount struct {
	ID           int64
	Username     string
	PasswordHash string
	Position     Position
}
