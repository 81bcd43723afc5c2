package dto

import (
	"errors"
	"mime/multipart"
	"time"

	"linka/internal/domains/accommodation/model"
	"linka/shared"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	gModel "linka/shared/model"
	"linka/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	Title         string                `json:"title"           validate:"required,max=255"`
	Description   *string               `json:"description"     validate:"omitempty,max=2000"`
	Address       string                `json:"address"         validate:"required,max=255"`
	City          string                `json:"city"            validate:"required,max=100"`
	AvailableFrom string                `json:"available_from"  validate:"required,datetime=2006-01-02"`
	AvailableTo   string                `json:"available_to"    validate:"required,datetime=2006-01-02"`
	TotalRooms    int                   `json:"total_rooms"     validate:"required,min=1,max=500"`
	MaxGuests     int                   `json:"max_guests"      validate:"required,min=1,max=20"`
	PricePerNight float64               `json:"price_per_night" validate:"gte=0"`
	Image         *multipart.FileHeader `json:"image"           swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
}

// Window parses the availability dates and checks their order.
func (r *CreateAccommodationRequest) Window() (from, to time.Time, err error) {
	return ParseWindow(r.AvailableFrom, r.AvailableTo)
}

func (r *CreateAccommodationRequest) ToModel(hostID string, from, to time.Time, imageURL *string) model.Accommodation {
	now := timezone.Now()

	return model.Accommodation{
		ID:             uuid.NewString(),
		HostID:         hostID,
		Title:          r.Title,
		Description:    r.Description,
		Address:        r.Address,
		City:           r.City,
		AvailableFrom:  from,
		AvailableTo:    to,
		TotalRooms:     r.TotalRooms,
		AvailableRooms: r.TotalRooms,
		MaxGuests:      r.MaxGuests,
		PricePerNight:  shared.RoundMoney(r.PricePerNight),
		Status:         model.StatusActive,
		Image:          imageURL,
		Version:        1,
		Metadata:       gModel.NewMetadata(now, hostID),
	}
}

var ErrInvalidWindow = errors.New("available_to must be after available_from")

// ParseWindow parses a pair of YYYY-MM-DD dates that must be strictly ordered.
func ParseWindow(fromValue, toValue string) (from, to time.Time, err error) {
	if from, err = timezone.ParseDate(fromValue); err != nil {
		return from, to, err //nolint:wrapcheck
	}

	if to, err = timezone.ParseDate(toValue); err != nil {
		return from, to, err //nolint:wrapcheck
	}

	if !to.After(from) {
		return from, to, ErrInvalidWindow
	}

	return from, to, nil
}

type UpdateAccommodationRequest struct {
	Title         *string               `db:"title"           json:"title,omitempty"           validate:"omitempty,min=1,max=255"`
	Description   *string               `db:"description"     json:"description,omitempty"     validate:"omitempty,max=2000"`
	Address       *string               `db:"address"         json:"address,omitempty"         validate:"omitempty,min=1,max=255"`
	City          *string               `db:"city"            json:"city,omitempty"            validate:"omitempty,min=1,max=100"`
	MaxGuests     *int                  `db:"max_guests"      json:"max_guests,omitempty"      validate:"omitempty,min=1,max=20"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night,omitempty" validate:"omitempty,gte=0"`
	AvailableFrom *string               `db:"-"               json:"available_from,omitempty"  validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string               `db:"-"               json:"available_to,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	TotalRooms    *int                  `db:"-"               json:"total_rooms,omitempty"     validate:"omitempty,min=1,max=500"`
	Image         *multipart.FileHeader `db:"-"               json:"image"                     swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile     multipart.File        `db:"-"               json:"-"`
}

func (r *UpdateAccommodationRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Address == nil && r.City == nil &&
		r.MaxGuests == nil && r.PricePerNight == nil && r.AvailableFrom == nil &&
		r.AvailableTo == nil && r.TotalRooms == nil && r.Image == nil
}

type CancelAccommodationRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// SearchAccommodationsRequest is the public hotel search query.
type SearchAccommodationsRequest struct {
	Address  string `json:"address"  validate:"omitempty,max=255"`
	CheckIn  string `json:"checkIn"  validate:"omitempty,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1,max=100"`
}

// ToFilter matches active listings whose window covers the stay and whose
// free rooms can host the party.
func (r SearchAccommodationsRequest) ToFilter() (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusActive, Table: model.TableName},
		gDto.Filter{Field: model.FieldAvailableRooms, Operator: gDto.FilterOperatorGreater, Value: 0, Table: model.TableName},
	)

	if r.Address != constant.Empty {
		filter.Add(gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldAddress, Operator: gDto.FilterOperatorLike, Value: r.Address, Table: model.TableName},
				gDto.Filter{Field: model.FieldCity, ArgName: "city_query", Operator: gDto.FilterOperatorLike, Value: r.Address, Table: model.TableName},
			},
		})
	}

	if r.CheckIn != constant.Empty {
		checkIn, err := timezone.ParseDate(r.CheckIn)
		if err != nil {
			return filter, err //nolint:wrapcheck
		}

		filter.Add(gDto.Filter{Field: model.FieldAvailableFrom, Operator: gDto.FilterOperatorLessEq, Value: checkIn, Table: model.TableName})
	}

	if r.CheckOut != constant.Empty {
		checkOut, err := timezone.ParseDate(r.CheckOut)
		if err != nil {
			return filter, err //nolint:wrapcheck
		}

		filter.Add(gDto.Filter{Field: model.FieldAvailableTo, Operator: gDto.FilterOperatorGreaterEq, Value: checkOut, Table: model.TableName})
	}

	if r.Guests > 0 {
		filter.Add(gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    model.TableName + ".available_rooms * " + model.TableName + ".max_guests >= :guests",
			Args:     map[string]any{"guests": r.Guests},
		})
	}

	return filter, nil
}

type AccommodationResponse struct {
	ID             string  `json:"id"`
	HostID         string  `json:"host_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	AvailableFrom  string  `json:"available_from"`
	AvailableTo    string  `json:"available_to"`
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	MaxGuests      int     `json:"max_guests"`
	PricePerNight  float64 `json:"price_per_night"`
	Status         string  `json:"status"`
	Image          *string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(model model.Accommodation) {
	r.ID = model.ID
	r.HostID = model.HostID
	r.Title = model.Title
	r.Description = model.Description
	r.Address = model.Address
	r.City = model.City
	r.AvailableFrom = timezone.Format(model.AvailableFrom, constant.DateOnlyFormat)
	r.AvailableTo = timezone.Format(model.AvailableTo, constant.DateOnlyFormat)
	r.TotalRooms = model.TotalRooms
	r.AvailableRooms = model.AvailableRooms
	r.MaxGuests = model.MaxGuests
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
