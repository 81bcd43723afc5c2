package ride

import (
	"net/http"

	"linka/infras/otel"
	"linka/internal/domains/ride/model"
	"linka/internal/domains/ride/model/dto"
	"linka/internal/domains/ride/service"
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
	queryFrom       = "from"
	queryTo         = "to"
	queryDate       = "date"
	queryPassengers = "passengers"
)

type Handler struct {
	service service.Ride
	otel    otel.Otel
}

func New(service service.Ride, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rides", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRide)
		routerGroup.Get("/search", handler.SearchRides)
		routerGroup.Get("/mine", handler.GetMyRides)
		routerGroup.Get("/{id}", handler.GetRideByID)
		routerGroup.Patch("/{id}", handler.UpdateRide)
		routerGroup.Post("/{id}/cancel", handler.CancelRide)
		routerGroup.Post("/{id}/complete", handler.CompleteRide)
	})
}

// CreateRide publishes a new ride offer.
// @Summary Offer a ride
// @Description Verified drivers with ride offering enabled can publish a ride.
// @Tags Ride
// @Accept json
// @Produce json
// @Param request body dto.CreateRideRequest true "Create Ride Request"
// @Success 201 {object} response.Data[dto.RideResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides [post]
// @Security BearerAuth
func (handler *Handler) CreateRide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRide")
	defer scope.End()

	req := dto.CreateRideRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	ride, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create ride")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Ride created successfully")

	response.WithJSON(writer, http.StatusCreated, ride)
}

// SearchRides finds upcoming active rides.
// @Summary Search rides
// @Description Match on origin and destination substrings, departure date and free seats.
// @Tags Ride
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param from query string false "Origin contains"
// @Param to query string false "Destination contains"
// @Param date query string false "Departure date (YYYY-MM-DD)"
// @Param passengers query integer false "Seats needed" default(1)
// @Success 200 {object} response.Data[dto.GetRidesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/search [get]
func (handler *Handler) SearchRides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	req := dto.SearchRidesRequest{
		From: query.Get(queryFrom),
		To:   query.Get(queryTo),
		Date: query.Get(queryDate),
	}

	if passengers := query.Get(queryPassengers); passengers != constant.Empty {
		value, err := shared.ConvertStringToInt(passengers)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse passengers")

			response.WithError(w, failure.BadRequestFromString("passengers must be a number"))

			return
		}

		req.Passengers = value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search query")

		response.WithError(w, err)

		return
	}

	rides, err := handler.service.Search(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rides")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rides retrieved successfully")

	response.WithJSON(w, http.StatusOK, rides)
}

// GetMyRides lists the rides offered by the caller.
// @Summary List my rides
// @Tags Ride
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(active, cancelled, completed)
// @Success 200 {object} response.Data[dto.GetRidesResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyRides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rides, err := handler.service.GetMine(ctx, queryParams, r.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my rides")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Driver rides retrieved successfully")

	response.WithJSON(w, http.StatusOK, rides)
}

// GetRideByID returns a single ride.
// @Summary Get a ride by ID
// @Tags Ride
// @Produce json
// @Param id path string true "Ride ID"
// @Success 200 {object} response.Data[dto.RideResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRideByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	ride, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ride by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ride retrieved successfully")

	response.WithJSON(w, http.StatusOK, ride)
}

// UpdateRide edits an active ride owned by the caller.
// @Summary Update a ride
// @Description Seats may not drop below the seats already confirmed.
// @Tags Ride
// @Accept json
// @Produce json
// @Param id path string true "Ride ID"
// @Param request body dto.UpdateRideRequest true "Update Ride Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update ride")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ride updated successfully")

	response.WithMessage(w, http.StatusOK, "Ride updated successfully")
}

// CancelRide withdraws an active ride and cancels its open bookings.
// @Summary Cancel a ride
// @Tags Ride
// @Accept json
// @Produce json
// @Param id path string true "Ride ID"
// @Param request body dto.CancelRideRequest false "Cancel Ride Request"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelRide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelRideRequest{}
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
		log.Error().Err(err).Msg("failed to cancel ride")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ride cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Ride cancelled successfully")
}

// CompleteRide closes a ride and settles its bookings.
// @Summary Complete a ride
// @Description Confirmed bookings become completed and pending ones are cancelled.
// @Tags Ride
// @Produce json
// @Param id path string true "Ride ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rides/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteRide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteRide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete ride")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ride completed successfully")

	response.WithMessage(w, http.StatusOK, "Ride completed successfully")
}
