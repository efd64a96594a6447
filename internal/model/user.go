package model

import "time"

// Roles stored in users.role.  Registration normalizes anything else to
// RoleStaff.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a row in the `users` table.  The password hash is kept
// internal to the repository and auth layers; API response types never
// include it.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique, case-sensitive login name.
//	PasswordHash – bcrypt hash of the password.  Never serialized.
//	Role         – RoleAdmin or RoleStaff.
//	FullName     – optional display name.
//	Email        – optional contact address.
//	CreatedAt    – timestamp of creation, immutable.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}
