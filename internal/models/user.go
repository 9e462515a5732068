package models

// RoleStudent can read and search; RoleAdmin can also mutate the catalog.
const RoleStudent = "Student"
const RoleAdmin = "Admin"

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// Caller identifies who is invoking a service operation. It is threaded
// explicitly through every mutating call; nothing reads identity from
// ambient state.
type Caller struct {
	Username string
	Role     string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
