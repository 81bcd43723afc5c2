package dto

import (
	"time"

	"linka/internal/domains/ride/model"
	"linka/shared"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	gModel "linka/shared/model"
	"linka/shared/timezone"

	"github.com/google/uuid"
)

type CreateRideRequest struct {
	Origin       string    `json:"origin"         validate:"required,max=255"`
	Destination  string    `json:"destination"    validate:"required,max=255,nefield=Origin"`
	DepartureAt  time.Time `json:"departure_at"   validate:"required"`
	TotalSeats   int       `json:"total_seats"    validate:"required,min=1,max=50"`
	PricePerSeat float64   `json:"price_per_seat" validate:"gte=0"`
	Notes        *string   `json:"notes"          validate:"omitempty,max=1000"`
}

func (r *CreateRideRequest) ToModel(driverID string) model.Ride {
	now := timezone.Now()

	return model.Ride{
		ID:             uuid.NewString(),
		DriverID:       driverID,
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureAt:    r.DepartureAt,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.TotalSeats,
		PricePerSeat:   shared.RoundMoney(r.PricePerSeat),
		Status:         model.StatusActive,
		Notes:          r.Notes,
		Version:        1,
		Metadata:       gModel.NewMetadata(now, driverID),
	}
}

// UpdateRideRequest edits an active ride. TotalSeats is applied separately so
// the seat change and the confirmed-seat floor are checked in one statement.
type UpdateRideRequest struct {
	Origin       *string    `db:"origin"         json:"origin,omitempty"         validate:"omitempty,min=1,max=255"`
	Destination  *string    `db:"destination"    json:"destination,omitempty"    validate:"omitempty,min=1,max=255"`
	DepartureAt  *time.Time `db:"departure_at"   json:"departure_at,omitempty"`
	PricePerSeat *float64   `db:"price_per_seat" json:"price_per_seat,omitempty" validate:"omitempty,gte=0"`
	Notes        *string    `db:"notes"          json:"notes,omitempty"          validate:"omitempty,max=1000"`
	TotalSeats   *int       `db:"-"              json:"total_seats,omitempty"    validate:"omitempty,min=1,max=50"`
}

func (r UpdateRideRequest) IsEmpty() bool {
	return r == UpdateRideRequest{}
}

type CancelRideRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// SearchRidesRequest holds the public search query.
type SearchRidesRequest struct {
	From       string `json:"from"       validate:"omitempty,max=255"`
	To         string `json:"to"         validate:"omitempty,max=255"`
	Date       string `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	Passengers int    `json:"passengers" validate:"omitempty,min=1,max=50"`
}

// ToFilter matches active rides departing after now with enough free seats.
func (r SearchRidesRequest) ToFilter(now time.Time) (gDto.FilterGroup, error) {
	passengers := max(r.Passengers, 1)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusActive, Table: model.TableName},
		gDto.Filter{Field: model.FieldDepartureAt, ArgName: "departure_after", Operator: gDto.FilterOperatorGreater, Value: now, Table: model.TableName},
		gDto.Filter{Field: model.FieldAvailableSeats, Operator: gDto.FilterOperatorGreaterEq, Value: passengers, Table: model.TableName},
	)

	if r.From != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldOrigin, Operator: gDto.FilterOperatorLike, Value: r.From, Table: model.TableName})
	}

	if r.To != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldDestination, Operator: gDto.FilterOperatorLike, Value: r.To, Table: model.TableName})
	}

	if r.Date != constant.Empty {
		day, err := timezone.ParseDate(r.Date)
		if err != nil {
			return filter, err //nolint:wrapcheck
		}

		filter.Add(
			gDto.Filter{Field: model.FieldDepartureAt, ArgName: "departure_from", Operator: gDto.FilterOperatorGreaterEq, Value: day, Table: model.TableName},
			gDto.Filter{Field: model.FieldDepartureAt, ArgName: "departure_until", Operator: gDto.FilterOperatorLess, Value: day.AddDate(0, 0, 1), Table: model.TableName},
		)
	}

	return filter, nil
}

type RideResponse struct {
	ID             string  `json:"id"`
	DriverID       string  `json:"driver_id"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureAt    string  `json:"departure_at"`
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
	PricePerSeat   float64 `json:"price_per_seat"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *RideResponse) FromModel(model model.Ride) {
	r.ID = model.ID
	r.DriverID = model.DriverID
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.DepartureAt = timezone.Format(model.DepartureAt, constant.DateFormat)
	r.TotalSeats = model.TotalSeats
	r.AvailableSeats = model.AvailableSeats
	r.PricePerSeat = model.PricePerSeat
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetRidesResponse struct {
	Rides     []RideResponse `json:"rides"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRidesResponse) FromModels(models []model.Ride, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rides = make([]RideResponse, len(models))
	for i, mod := range models {
		r.Rides[i].FromModel(mod)
	}
}
