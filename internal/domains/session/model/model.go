package model

import (
	"time"

	"linka/shared/model"
)

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldUserAgent = "user_agent"
	FieldIPAddress = "ip_address"
	FieldExpiresAt = "expires_at"
	FieldRevoked   = "revoked"
)

// Session backs one refresh token. Rotating or logging out revokes it.
type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	UserAgent *string   `db:"user_agent"`
	IPAddress *string   `db:"ip_address"`
	ExpiresAt time.Time `db:"expires_at"`
	Revoked   bool      `db:"revoked"`
	model.Metadata
}

func (s Session) IsUsable(now time.Time) bool {
	return s.ID != "" && !s.Revoked && now.Before(s.ExpiresAt)
}
