package constant

import "time"

const (
	ServiceName = "linka"

	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// ContextSystem is the actor recorded for changes no user initiated.
const ContextSystem = "system"

type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyPrincipal contextKey = "principal"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	MaxValueLimit       = 100
	DefaultValueSortBy  = FieldCreatedAt
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const PqErrorCodeUniqueViolation = "23505"

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly

	MinutesToSeconds = 60
)

const (
	Asterix = "*"
	Empty   = ""
)
