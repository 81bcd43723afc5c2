package dto

import (
	"time"

	"linka/internal/domains/booking/model"
	"linka/shared"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	gModel "linka/shared/model"
	"linka/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest targets exactly one of RideID or AccommodationID.
// CheckIn and CheckOut are required for accommodations.
type CreateBookingRequest struct {
	RideID          *string `json:"ride_id,omitempty"          validate:"omitempty,uuid"`
	AccommodationID *string `json:"accommodation_id,omitempty" validate:"omitempty,uuid"`
	Quantity        int     `json:"quantity"                   validate:"required,min=1,max=50"`
	Guests          *int    `json:"guests,omitempty"           validate:"omitempty,min=1,max=1000"`
	CheckIn         *string `json:"check_in,omitempty"         validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string `json:"check_out,omitempty"        validate:"omitempty,datetime=2006-01-02"`
}

// HasSingleTarget reports whether exactly one target is set.
func (r *CreateBookingRequest) HasSingleTarget() bool {
	return (r.RideID != nil) != (r.AccommodationID != nil)
}

// Stay parses the requested nights. The error is ErrMissingStay when either date is absent.
func (r *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return checkIn, checkOut, ErrMissingStay
	}

	if checkIn, err = timezone.ParseDate(*r.CheckIn); err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if checkOut, err = timezone.ParseDate(*r.CheckOut); err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, ErrInvalidStay
	}

	return checkIn, checkOut, nil
}

// ToModel builds a pending booking; unitPrice is the price of one seat or one room for the whole stay.
func (r *CreateBookingRequest) ToModel(customerID, providerID string, unitPrice float64) model.Booking {
	now := timezone.Now()
	unitPrice = shared.RoundMoney(unitPrice)

	return model.Booking{
		ID:              uuid.NewString(),
		RideID:          r.RideID,
		AccommodationID: r.AccommodationID,
		CustomerID:      customerID,
		ProviderID:      providerID,
		Quantity:        r.Quantity,
		Guests:          r.Guests,
		UnitPrice:       unitPrice,
		TotalPrice:      shared.RoundMoney(unitPrice * float64(r.Quantity)),
		Status:          model.StatusPending,
		Metadata:        gModel.NewMetadata(now, customerID),
	}
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RateBookingRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	Target             string  `json:"target"`
	RideID             *string `json:"ride_id,omitempty"`
	AccommodationID    *string `json:"accommodation_id,omitempty"`
	CustomerID         string  `json:"customer_id"`
	ProviderID         string  `json:"provider_id"`
	Quantity           int     `json:"quantity"`
	Guests             *int    `json:"guests,omitempty"`
	UnitPrice          float64 `json:"unit_price"`
	TotalPrice         float64 `json:"total_price"`
	CheckIn            *string `json:"check_in,omitempty"`
	CheckOut           *string `json:"check_out,omitempty"`
	Status             string  `json:"status"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledBy        *string `json:"cancelled_by,omitempty"`
	Rating             *int    `json:"rating,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Target = model.TargetType()
	r.RideID = model.RideID
	r.AccommodationID = model.AccommodationID
	r.CustomerID = model.CustomerID
	r.ProviderID = model.ProviderID
	r.Quantity = model.Quantity
	r.Guests = model.Guests
	r.UnitPrice = model.UnitPrice
	r.TotalPrice = model.TotalPrice
	r.CheckIn = formatDate(model.CheckIn)
	r.CheckOut = formatDate(model.CheckOut)
	r.Status = model.Status
	r.RejectionReason = model.RejectionReason
	r.CancellationReason = model.CancellationReason
	r.CancelledBy = model.CancelledBy
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, constant.DateOnlyFormat)

	return &formatted
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
