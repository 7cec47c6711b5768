package model

// Scope identifies the signed-in dashboard user on whose behalf a request runs.
type Scope struct {
	SessionID string
	UserID    int
	Name      string
	Email     string
	Role      Role
	Token     string
}

// IsAdmin reports whether the scope may reach admin-only pages.
func (sc Scope) IsAdmin() bool {
	return sc.Role == RoleAdmin
}

// HasRole reports whether the scope holds one of roles.
func (sc Scope) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if sc.Role == r {
			return true
		}
	}
	return false
}
