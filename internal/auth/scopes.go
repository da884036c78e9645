package auth

// OAuth scopes recognized by the warmup service.
const (
	ScopeWarmupWrite = "warmup:write"
	ScopeWarmupRead  = "warmup:read"
)
