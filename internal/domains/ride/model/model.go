package model

import (
	"time"

	"linka/shared/model"
)

const (
	TableName  = "rides"
	EntityName = "ride"

	FieldID             = "id"
	FieldDriverID       = "driver_id"
	FieldOrigin         = "origin"
	FieldDestination    = "destination"
	FieldDepartureAt    = "departure_at"
	FieldTotalSeats     = "total_seats"
	FieldAvailableSeats = "available_seats"
	FieldPricePerSeat   = "price_per_seat"
	FieldStatus         = "status"
	FieldNotes          = "notes"
	FieldVersion        = "version"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	CacheGet    = "ride:get"
	CacheGetAll = "ride:gets"
	CacheCount  = "ride:count"
)

type Ride struct {
	ID             string    `db:"id"`
	DriverID       string    `db:"driver_id"`
	Origin         string    `db:"origin"`
	Destination    string    `db:"destination"`
	DepartureAt    time.Time `db:"departure_at"`
	TotalSeats     int       `db:"total_seats"`
	AvailableSeats int       `db:"available_seats"`
	PricePerSeat   float64   `db:"price_per_seat"`
	Status         string    `db:"status"`
	Notes          *string   `db:"notes"`
	Version        int       `db:"version"`
	model.Metadata
}

func (r Ride) IsBookable(now time.Time) bool {
	return r.Status == StatusActive && r.DepartureAt.After(now)
}

// ConfirmedSeats is the number of seats held by confirmed bookings.
func (r Ride) ConfirmedSeats() int {
	return r.TotalSeats - r.AvailableSeats
}
