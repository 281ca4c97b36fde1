package models

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account stored in the users collection
type User struct {
	ID       string `json:"id"`                 // Creation timestamp in milliseconds
	Username string `json:"username"`           // Unique username
	Password string `json:"password,omitempty"` // bcrypt hash, empty outside the users collection
	Role     string `json:"role"`               // RoleUser or RoleAdmin
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
