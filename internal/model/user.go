package model

import "strings"

// Role is the dashboard role of a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSubscriber Role = "subscriber"
	RoleUser       Role = "user"
)

// roleIDs maps role names to the numeric role_id used by POST /users.
var roleIDs = map[Role]int{
	RoleAdmin:      1,
	RoleUser:       2,
	RoleSubscriber: 3,
}

// RoleID returns the numeric role id, defaulting to the plain user role.
func (r Role) RoleID() int {
	if id, ok := roleIDs[r]; ok {
		return id
	}
	return roleIDs[RoleUser]
}

// ParseRole normalises a role name. Unknown names map to RoleUser.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSubscriber:
		return RoleSubscriber
	default:
		return RoleUser
	}
}

// User is a dashboard account as returned by the remote API.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UserRef is the embedded user summary on subscribers, bookings and
// transactions.
type UserRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
