package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// BearerScheme is the only accepted Authorization scheme
const BearerScheme = "Bearer"
