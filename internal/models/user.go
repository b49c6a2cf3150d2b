package models

// UserRole represents the role of a dashboard user
type UserRole string

const (
	UserRoleManager  UserRole = "manager"
	UserRoleCustomer UserRole = "customer"
)

// User represents an authenticated dashboard user
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
