package session

// Role labels as issued by the backend in the signin response.
const (
	RoleUser    = "ROLE_USER"
	RoleManager = "ROLE_MANAGER"
	RoleAdmin   = "ROLE_ADMIN"
)

// Session is the locally held record proving a successful login. The JSON
// tags match the /auth/signin response body exactly; the whole body is
// persisted as-is. Validity is delegated to the backend: there is no
// client-side expiry, a revoked token is only discovered when a later call
// fails.
type Session struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether roles contains r.
func HasRole(roles []string, r string) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether roles grants administrator access.
func IsAdmin(roles []string) bool {
	return HasRole(roles, RoleAdmin)
}

// IsManager reports whether roles grants manager capability.
// Administrators always do.
func IsManager(roles []string) bool {
	return HasRole(roles, RoleManager) || HasRole(roles, RoleAdmin)
}
