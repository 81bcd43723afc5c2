package model

import (
	"slices"
	"time"

	"linka/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldRideID             = "ride_id"
	FieldAccommodationID    = "accommodation_id"
	FieldCustomerID         = "customer_id"
	FieldProviderID         = "provider_id"
	FieldQuantity           = "quantity"
	FieldGuests             = "guests"
	FieldUnitPrice          = "unit_price"
	FieldTotalPrice         = "total_price"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldStatus             = "status"
	FieldRejectionReason    = "rejection_reason"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledBy        = "cancelled_by"
	FieldRating             = "rating"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	TargetRide          = "ride"
	TargetAccommodation = "accommodation"
)

const (
	CacheGetAll = "booking:gets"
	CacheCount  = "booking:count"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
// Terminal statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func IsTerminal(status string) bool {
	_, ok := transitions[status]

	return !ok
}

// OpenStatuses hold or may still hold capacity.
func OpenStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

// Booking targets exactly one ride or one accommodation.
type Booking struct {
	ID                 string     `db:"id"`
	RideID             *string    `db:"ride_id"`
	AccommodationID    *string    `db:"accommodation_id"`
	CustomerID         string     `db:"customer_id"`
	ProviderID         string     `db:"provider_id"`
	Quantity           int        `db:"quantity"`
	Guests             *int       `db:"guests"`
	UnitPrice          float64    `db:"unit_price"`
	TotalPrice         float64    `db:"total_price"`
	CheckIn            *time.Time `db:"check_in"`
	CheckOut           *time.Time `db:"check_out"`
	Status             string     `db:"status"`
	RejectionReason    *string    `db:"rejection_reason"`
	CancellationReason *string    `db:"cancellation_reason"`
	CancelledBy        *string    `db:"cancelled_by"`
	Rating             *int       `db:"rating"`
	model.Metadata
}

func (b Booking) TargetType() string {
	if b.RideID != nil {
		return TargetRide
	}

	return TargetAccommodation
}

func (b Booking) TargetID() string {
	switch {
	case b.RideID != nil:
		return *b.RideID
	case b.AccommodationID != nil:
		return *b.AccommodationID
	default:
		return ""
	}
}

func (b Booking) IsParty(userID string) bool {
	return userID != "" && (b.CustomerID == userID || b.ProviderID == userID)
}
