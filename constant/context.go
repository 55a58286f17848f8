package constant

type ContextKey string

const (
	// UserIDKey carries the authenticated user id set by the auth middleware.
	UserIDKey ContextKey = "user_id"
	// RoleKey carries the cached role resolved during token validation.
	RoleKey ContextKey = "role"
)
