package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super-admin" // Platform owner - full access
	RoleAdmin      Role = "admin"       // Manages users and attendance
	RoleEmployee   Role = "employee"    // Regular employee
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can access administration surfaces
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
