package domain

import "time"

// Role values assignable to a user account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor in the system. PasswordHash never
// leaves the process: it is excluded from JSON and every boundary crossing
// goes through PublicUser instead of relying on the struct tag alone.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	IsDisabled   bool      `json:"isDisabled"`
	PasswordHash string    `json:"-"`
}

// PublicUser is the client-facing projection of a User. It structurally
// cannot carry the password hash.
type PublicUser struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	IsDisabled bool      `json:"isDisabled"`
}

// Public returns the client-facing projection of u.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		IsDisabled: u.IsDisabled,
	}
}

// ValidRole reports whether role is one of the assignable role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
