package models

import "time"

// StaffRole represents the role of a staff member
type StaffRole string

const (
	StaffRoleManager  StaffRole = "manager"
	StaffRoleChef     StaffRole = "chef"
	StaffRoleWaiter   StaffRole = "waiter"
	StaffRoleCashier  StaffRole = "cashier"
	StaffRoleDelivery StaffRole = "delivery"
)

// StaffStatus represents the working state of a staff member
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
	StaffStatusOnBreak  StaffStatus = "on-break"
)

// Shift represents a staff work shift
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// Staff represents a team member
type Staff struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Role     StaffRole   `json:"role"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Status   StaffStatus `json:"status"`
	JoinDate time.Time   `json:"joinDate"`
	Shift    Shift       `json:"shift,omitempty"`
}
