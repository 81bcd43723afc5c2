package model

import (
	"time"

	"linka/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID             = "id"
	FieldHostID         = "host_id"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldAddress        = "address"
	FieldCity           = "city"
	FieldAvailableFrom  = "available_from"
	FieldAvailableTo    = "available_to"
	FieldTotalRooms     = "total_rooms"
	FieldAvailableRooms = "available_rooms"
	FieldMaxGuests      = "max_guests"
	FieldPricePerNight  = "price_per_night"
	FieldStatus         = "status"
	FieldImage          = "image"
	FieldVersion        = "version"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	CacheGet    = "accommodation:get"
	CacheGetAll = "accommodation:gets"
	CacheCount  = "accommodation:count"
)

// Accommodation offers TotalRooms identical rooms, each sleeping MaxGuests,
// between AvailableFrom and AvailableTo.
type Accommodation struct {
	ID             string    `db:"id"`
	HostID         string    `db:"host_id"`
	Title          string    `db:"title"`
	Description    *string   `db:"description"`
	Address        string    `db:"address"`
	City           string    `db:"city"`
	AvailableFrom  time.Time `db:"available_from"`
	AvailableTo    time.Time `db:"available_to"`
	TotalRooms     int       `db:"total_rooms"`
	AvailableRooms int       `db:"available_rooms"`
	MaxGuests      int       `db:"max_guests"`
	PricePerNight  float64   `db:"price_per_night"`
	Status         string    `db:"status"`
	Image          *string   `db:"image"`
	Version        int       `db:"version"`
	model.Metadata
}

// Covers reports whether the stay [checkIn, checkOut) fits the availability window.
func (a Accommodation) Covers(checkIn, checkOut time.Time) bool {
	return !checkIn.Before(a.AvailableFrom) && !checkOut.After(a.AvailableTo)
}
