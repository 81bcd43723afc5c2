package hotel

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"linka/internal/domains/accommodation/model/dto"
	"linka/shared"
	"linka/shared/constant"
	"linka/shared/failure"
)

const (
	formTitle         = "title"
	formDescription   = "description"
	formAddress       = "address"
	formCity          = "city"
	formAvailableFrom = "available_from"
	formAvailableTo   = "available_to"
	formTotalRooms    = "total_rooms"
	formMaxGuests     = "max_guests"
	formPricePerNight = "price_per_night"
	formImage         = "image"
)

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData)
}

func optionalString(r *http.Request, key string) *string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return nil
	}

	value := r.FormValue(key)

	return &value
}

func optionalInt(r *http.Request, key string) (*int, error) {
	value := r.FormValue(key)
	if value == constant.Empty {
		return nil, nil
	}

	parsed, err := shared.ConvertStringToInt(value)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", key))
	}

	return &parsed, nil
}

func optionalFloat(r *http.Request, key string) (*float64, error) {
	value := r.FormValue(key)
	if value == constant.Empty {
		return nil, nil
	}

	parsed, err := shared.ConvertStringToFloat(value)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", key))
	}

	return &parsed, nil
}

// attachImage returns the uploaded image, if any. The caller closes the file.
func attachImage(r *http.Request) (*multipart.FileHeader, multipart.File) {
	file, fileHeader, err := r.FormFile(formImage)
	if err != nil {
		return nil, nil
	}

	return fileHeader, file
}

func createRequestFromForm(r *http.Request) (dto.CreateAccommodationRequest, error) {
	req := dto.CreateAccommodationRequest{
		Title:         r.FormValue(formTitle),
		Description:   optionalString(r, formDescription),
		Address:       r.FormValue(formAddress),
		City:          r.FormValue(formCity),
		AvailableFrom: r.FormValue(formAvailableFrom),
		AvailableTo:   r.FormValue(formAvailableTo),
	}

	totalRooms, err := optionalInt(r, formTotalRooms)
	if err != nil {
		return req, err
	}

	if totalRooms != nil {
		req.TotalRooms = *totalRooms
	}

	maxGuests, err := optionalInt(r, formMaxGuests)
	if err != nil {
		return req, err
	}

	if maxGuests != nil {
		req.MaxGuests = *maxGuests
	}

	price, err := optionalFloat(r, formPricePerNight)
	if err != nil {
		return req, err
	}

	if price != nil {
		req.PricePerNight = *price
	}

	req.Image, req.ImageFile = attachImage(r)

	return req, nil
}

func updateRequestFromForm(r *http.Request) (dto.UpdateAccommodationRequest, error) {
	req := dto.UpdateAccommodationRequest{
		Title:         optionalString(r, formTitle),
		Description:   optionalString(r, formDescription),
		Address:       optionalString(r, formAddress),
		City:          optionalString(r, formCity),
		AvailableFrom: optionalString(r, formAvailableFrom),
		AvailableTo:   optionalString(r, formAvailableTo),
	}

	var err error

	if req.TotalRooms, err = optionalInt(r, formTotalRooms); err != nil {
		return req, err
	}

	if req.MaxGuests, err = optionalInt(r, formMaxGuests); err != nil {
		return req, err
	}

	if req.PricePerNight, err = optionalFloat(r, formPricePerNight); err != nil {
		return req, err
	}

	req.Image, req.ImageFile = attachImage(r)

	return req, nil
}
