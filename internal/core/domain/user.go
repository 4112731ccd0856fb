package domain

import "time"

// Role is the closed set of principal roles. Keeping it a distinct type
// means an unrecognised role literal is a compile error, not a silent
// authorization hole.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a stored string onto a Role. Unknown values fall back to
// RoleUser so a corrupted document can never grant elevated access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleEmployee:
		return RoleEmployee
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// User models an authenticated principal.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Authorize fails with a Forbidden error unless the user's role is one of
// allowed. Pure predicate, no side effects.
func Authorize(u *User, allowed ...Role) error {
	for _, r := range allowed {
		if u.Role == r {
			return nil
		}
	}
	return Forbidden("you do not have permission to perform this action")
}

// AuthorizeOwnerOrRole fails with a Forbidden error unless the user owns
// the resource or holds one of the allowed roles. Used for update/delete
// on owned resources.
func AuthorizeOwnerOrRole(u *User, ownerID string, allowed ...Role) error {
	if ownerID != "" && u.ID == ownerID {
		return nil
	}
	return Authorize(u, allowed...)
}
