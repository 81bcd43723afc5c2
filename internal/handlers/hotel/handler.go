package hotel

import (
	"net/http"

	"linka/infras/otel"
	"linka/internal/domains/accommodation/model"
	"linka/internal/domains/accommodation/model/dto"
	"linka/internal/domains/accommodation/service"
	"linka/shared"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/failure"
	"linka/shared/validator"
	"linka/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryAddress  = "address"
	queryCheckIn  = "checkIn"
	queryCheckOut = "checkOut"
	queryGuests   = "guests"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.SearchHotels)
		routerGroup.Get("/mine", handler.GetMyHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Patch("/{id}", handler.UpdateHotel)
		routerGroup.Post("/{id}/cancel", handler.CancelHotel)
	})
}

// CreateHotel lists a new accommodation.
// @Summary Offer an accommodation
// @Description Verified hosts with stay offering enabled can list rooms. The image is optional.
// @Tags Hotel
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param address formData string true "Address"
// @Param city formData string true "City"
// @Param available_from formData string true "First available night (YYYY-MM-DD)"
// @Param available_to formData string true "Checkout limit (YYYY-MM-DD)"
// @Param total_rooms formData integer true "Rooms offered"
// @Param max_guests formData integer true "Guests per room"
// @Param price_per_night formData number true "Price per room per night"
// @Param image formData file false "Listing image"
// @Success 201 {object} response.Data[dto.AccommodationResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req, err := createRequestFromForm(request)
	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read form values")

		response.WithError(writer, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Accommodation created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, hotel)
}

// SearchHotels finds active accommodations with free rooms.
// @Summary Search accommodations
// @Description Filter by address or city substring, stay window and party size.
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param address query string false "Address or city contains"
// @Param checkIn query string false "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out date (YYYY-MM-DD)"
// @Param guests query integer false "Guests per room"
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels [get]
func (handler *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	req := dto.SearchAccommodationsRequest{
		Address:  query.Get(queryAddress),
		CheckIn:  query.Get(queryCheckIn),
		CheckOut: query.Get(queryCheckOut),
	}

	if guests := query.Get(queryGuests); guests != constant.Empty {
		value, err := shared.ConvertStringToInt(guests)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse guests")

			response.WithError(w, failure.BadRequestFromString("guests must be a number"))

			return
		}

		req.Guests = value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search query")

		response.WithError(w, err)

		return
	}

	hotels, err := handler.service.Search(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search accommodations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodations retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetMyHotels lists the accommodations hosted by the caller.
// @Summary List my accommodations
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(active, cancelled)
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hotels, err := handler.service.GetMine(ctx, queryParams, r.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my accommodations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Host accommodations retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID returns a single accommodation.
// @Summary Get an accommodation by ID
// @Tags Hotel
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel edits an active accommodation owned by the caller.
// @Summary Update an accommodation
// @Description Accepts JSON or multipart with a replacement image. Rooms may not drop below those already confirmed.
// @Tags Hotel
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body dto.UpdateAccommodationRequest false "Update Accommodation Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAccommodationRequest{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(w, failure.BadRequest(err))

			return
		}

		var err error

		req, err = updateRequestFromForm(r)
		if req.ImageFile != nil {
			defer req.ImageFile.Close()
		}

		if err == nil {
			err = validator.ValidateStruct(&req)
		}

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	} else if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation updated successfully")

	response.WithMessage(w, http.StatusOK, "Accommodation updated successfully")
}

// CancelHotel withdraws a listing and cancels its open bookings.
// @Summary Cancel an accommodation
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body dto.CancelAccommodationRequest false "Cancel Accommodation Request"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelAccommodationRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	if err := handler.service.Cancel(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Accommodation cancelled successfully")
}
