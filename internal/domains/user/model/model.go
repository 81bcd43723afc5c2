package model

import (
	"time"

	"linka/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                   = "id"
	FieldEmail                = "email"
	FieldFullName             = "full_name"
	FieldPhone                = "phone"
	FieldPassword             = "password"
	FieldRole                 = "role"
	FieldVerificationStatus   = "verification_status"
	FieldVerificationDocument = "verification_document"
	FieldVerificationNote     = "verification_note"
	FieldCanOfferRides        = "can_offer_rides"
	FieldCanOfferStays        = "can_offer_stays"
	FieldRating               = "rating"
	FieldRatingCount          = "rating_count"
	FieldProfileImage         = "profile_image"
	FieldLastLogin            = "last_login"
	FieldActive               = "active"
)

const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

// Cache prefixes shared with services that mutate users indirectly (ratings).
const (
	CacheGet    = "user:get"
	CacheGetAll = "user:gets"
	CacheCount  = "user:count"
)

// User is keyed by the identity-provider subject; local accounts get a UUID.
type User struct {
	ID                   string     `db:"id"`
	Email                string     `db:"email"`
	FullName             string     `db:"full_name"`
	Phone                *string    `db:"phone"`
	Password             *string    `db:"password"`
	Role                 string     `db:"role"`
	VerificationStatus   string     `db:"verification_status"`
	VerificationDocument *string    `db:"verification_document"`
	VerificationNote     *string    `db:"verification_note"`
	CanOfferRides        bool       `db:"can_offer_rides"`
	CanOfferStays        bool       `db:"can_offer_stays"`
	Rating               float64    `db:"rating"`
	RatingCount          int        `db:"rating_count"`
	ProfileImage         *string    `db:"profile_image"`
	LastLogin            *time.Time `db:"last_login"`
	Active               bool       `db:"active"`
	model.Metadata
}

func (u User) IsVerified() bool {
	return u.VerificationStatus == VerificationVerified
}
