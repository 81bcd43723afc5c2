package service

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/infras/postgres"
	accommodationModel "linka/internal/domains/accommodation/model"
	accommodationRepository "linka/internal/domains/accommodation/repository"
	"linka/internal/domains/booking/model"
	"linka/internal/domains/booking/model/dto"
	"linka/internal/domains/booking/repository"
	rideModel "linka/internal/domains/ride/model"
	rideRepository "linka/internal/domains/ride/repository"
	userModel "linka/internal/domains/user/model"
	userRepository "linka/internal/domains/user/repository"
	"linka/shared"
	"linka/shared/cache"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/event"
	"linka/shared/failure"
	"linka/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	stageCreate  = "create"
	stageApprove = "approve"
)

var errCapacityOutOfSync = errors.New("released capacity exceeds listing total")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetCustomerBookings(ctx context.Context, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	GetProviderBookings(ctx context.Context, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string, req dto.RejectBookingRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
	Complete(ctx context.Context, id string) error
	Rate(ctx context.Context, id string, req dto.RateBookingRequest) error
}

type serviceImpl struct {
	repo              repository.Booking
	rideRepo          rideRepository.Ride
	accommodationRepo accommodationRepository.Accommodation
	userRepo          userRepository.User
	transactor        postgres.Transactor
	publisher         event.Publisher
	metrics           *metrics.Metrics
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(
	repo repository.Booking,
	rideRepo rideRepository.Ride,
	accommodationRepo accommodationRepository.Accommodation,
	userRepo userRepository.User,
	transactor postgres.Transactor,
	publisher event.Publisher,
	metrics *metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:              repo,
		rideRepo:          rideRepo,
		accommodationRepo: accommodationRepo,
		userRepo:          userRepo,
		transactor:        transactor,
		publisher:         publisher,
		metrics:           metrics,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

// Create stores a pending booking. Capacity is checked but not held until approval.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	customer, err := s.customer(ctx)
	if err != nil {
		return res, err
	}

	if !req.HasSingleTarget() {
		return res, failure.BadRequestFromString("exactly one of ride_id or accommodation_id is required")
	}

	var booking model.Booking

	if req.RideID != nil {
		booking, err = s.rideBooking(ctx, customer.ID, req)
	} else {
		booking, err = s.stayBooking(ctx, customer.ID, req)
	}

	if err != nil {
		return res, err
	}

	duplicate, err := s.repo.Exist(ctx, s.openBookingFilter(customer.ID, booking))
	if err != nil {
		log.Error().Err(err).Msg("failed to check duplicate booking")

		return res, fmt.Errorf("failed to check duplicate booking: %w", err)
	}

	if duplicate {
		return res, failure.Conflict("you already have an open booking for this listing")
	}

	if err = s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrOpenBookingExists) {
			return res, failure.Conflict("you already have an open booking for this listing")
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	event.PublishAsync(ctx, s.publisher, booking.Event(model.StatusPending))
	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) rideBooking(ctx context.Context, customerID string, req dto.CreateBookingRequest) (model.Booking, error) {
	ride, err := s.rideRepo.Get(ctx, shared.FilterByID(*req.RideID, rideModel.FieldID, rideModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ride")

		return model.Booking{}, fmt.Errorf("failed to get ride: %w", err)
	}

	if ride.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("ride not found")
	}

	if !ride.IsBookable(timezone.Now()) {
		return model.Booking{}, failure.InvalidState("ride is not open for booking")
	}

	if ride.DriverID == customerID {
		return model.Booking{}, failure.Forbidden("you cannot book your own ride")
	}

	if req.Quantity > ride.AvailableSeats {
		s.metrics.ObserveCapacityRejection(model.TargetRide, stageCreate)

		return model.Booking{}, failure.CapacityExceeded(fmt.Sprintf("only %d seats left", ride.AvailableSeats))
	}

	req.AccommodationID, req.CheckIn, req.CheckOut, req.Guests = nil, nil, nil, nil

	return req.ToModel(customerID, ride.DriverID, ride.PricePerSeat), nil
}

func (s *serviceImpl) stayBooking(ctx context.Context, customerID string, req dto.CreateBookingRequest) (model.Booking, error) {
	accommodation, err := s.accommodationRepo.Get(ctx, shared.FilterByID(*req.AccommodationID, accommodationModel.FieldID, accommodationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return model.Booking{}, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("accommodation not found")
	}

	if accommodation.Status != accommodationModel.StatusActive {
		return model.Booking{}, failure.InvalidState("accommodation is not open for booking")
	}

	if accommodation.HostID == customerID {
		return model.Booking{}, failure.Forbidden("you cannot book your own accommodation")
	}

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return model.Booking{}, failure.BadRequest(err)
	}

	if checkIn.Before(timezone.StartOfDay(timezone.Now())) {
		return model.Booking{}, failure.BadRequestFromString("check in cannot be in the past")
	}

	if !accommodation.Covers(checkIn, checkOut) {
		return model.Booking{}, failure.BadRequestFromString("stay is outside the availability window")
	}

	if req.Guests != nil && *req.Guests > req.Quantity*accommodation.MaxGuests {
		return model.Booking{}, failure.BadRequestFromString(fmt.Sprintf("%d rooms host at most %d guests", req.Quantity, req.Quantity*accommodation.MaxGuests))
	}

	if req.Quantity > accommodation.AvailableRooms {
		s.metrics.ObserveCapacityRejection(model.TargetAccommodation, stageCreate)

		return model.Booking{}, failure.CapacityExceeded(fmt.Sprintf("only %d rooms left", accommodation.AvailableRooms))
	}

	nights := timezone.Nights(checkIn, checkOut)

	req.RideID = nil
	booking := req.ToModel(customerID, accommodation.HostID, accommodation.PricePerNight*float64(nights))
	booking.CheckIn = &checkIn
	booking.CheckOut = &checkOut

	return booking, nil
}

func (s *serviceImpl) openBookingFilter(customerID string, booking model.Booking) gDto.FilterGroup {
	field := model.FieldRideID
	if booking.TargetType() == model.TargetAccommodation {
		field = model.FieldAccommodationID
	}

	filter := model.FilterByTargetAndStatus(field, booking.TargetID(), model.OpenStatuses()...)
	filter.Add(gDto.Filter{Field: model.FieldCustomerID, Operator: gDto.FilterOperatorEq, Value: customerID, Table: model.TableName})

	return filter
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if !booking.IsParty(actor) {
		return res, failure.Forbidden("you are not a party to this booking")
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetCustomerBookings(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomerBookings")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.list(ctx, params, model.FieldCustomerID, status)
}

func (s *serviceImpl) GetProviderBookings(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProviderBookings")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.list(ctx, params, model.FieldProviderID, status)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, partyField, status string) (res dto.GetBookingsResponse, err error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		return res, failure.Unauthorized("missing principal")
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{Field: partyField, Operator: gDto.FilterOperatorEq, Value: actor, Table: model.TableName})

	if status != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName})
	}

	params.Sanitize(constant.FieldCreatedAt, model.FieldTotalPrice, model.FieldCheckIn)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCount, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Approve confirms a pending booking and takes its quantity from the listing
// in the same transaction.
func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.providerBooking(ctx, id)
	if err != nil {
		return err
	}

	err = s.transition(ctx, booking, model.StatusConfirmed, nil, func(tx *sqlx.Tx) error {
		ok, err := s.reserve(ctx, tx, booking)
		if err != nil {
			return err
		}

		if !ok {
			s.metrics.ObserveCapacityRejection(booking.TargetType(), stageApprove)

			return failure.CapacityExceeded("not enough capacity left to approve this booking")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateTarget(ctx, booking)

	return nil
}

func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.RejectBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.providerBooking(ctx, id)
	if err != nil {
		return err
	}

	return s.transition(ctx, booking, model.StatusRejected, map[string]any{
		model.FieldRejectionReason: req.Reason,
	}, nil)
}

// Cancel is open to both parties. A confirmed booking gives its quantity back.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if !booking.IsParty(actor) {
		return failure.Forbidden("you are not a party to this booking")
	}

	extra := map[string]any{model.FieldCancelledBy: actor}
	if req.Reason != constant.Empty {
		extra[model.FieldCancellationReason] = req.Reason
	}

	var release func(tx *sqlx.Tx) error
	if booking.Status == model.StatusConfirmed {
		release = s.giveBack(ctx, booking)
	}

	if err = s.transition(ctx, booking, model.StatusCancelled, extra, release); err != nil {
		return err
	}

	if release != nil {
		s.invalidateTarget(ctx, booking)
	}

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.providerBooking(ctx, id)
	if err != nil {
		return err
	}

	// Rooms free up once the guest checks out. Seats stay taken: the ride is over.
	var release func(tx *sqlx.Tx) error
	if booking.TargetType() == model.TargetAccommodation {
		release = s.giveBack(ctx, booking)
	}

	if err = s.transition(ctx, booking, model.StatusCompleted, nil, release); err != nil {
		return err
	}

	if release != nil {
		s.invalidateTarget(ctx, booking)
	}

	return nil
}

// Rate records the customer's score once and folds it into the provider's average.
func (s *serviceImpl) Rate(ctx context.Context, id string, req dto.RateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.CustomerID != actor {
		return failure.Forbidden("only the customer can rate this booking")
	}

	if booking.Status != model.StatusCompleted {
		return failure.InvalidState("only completed bookings can be rated")
	}

	if booking.Rating != nil {
		return failure.Conflict("booking is already rated")
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		fields := shared.TransformFields(struct{}{}, actor)
		fields[model.FieldRating] = req.Score

		filter := model.FilterByIDAndStatus(id, model.StatusCompleted)
		filter.Add(gDto.Filter{Field: model.FieldRating, Operator: gDto.FilterIsNull, Table: model.TableName})

		affected, err := s.repo.UpdateCountTx(ctx, tx, fields, filter)
		if err != nil {
			return fmt.Errorf("failed to rate booking: %w", err)
		}

		if affected == 0 {
			return failure.Conflict("booking is already rated")
		}

		return s.userRepo.ApplyRatingTx(ctx, tx, booking.ProviderID, req.Score)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to rate booking")

		return err //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(userModel.CacheGet, booking.ProviderID)); err != nil {
			log.Error().Err(err).Msg("failed to delete provider from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
	}()

	return nil
}

// transition moves booking to status with a conditional update on its current
// status. capacity runs in the same transaction; any error rolls both back.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, status string, extra map[string]any, capacity func(tx *sqlx.Tx) error) error {
	if !model.CanTransition(booking.Status, status) {
		return failure.InvalidState(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, status))
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(struct{}{}, actor)
	maps.Copy(fields, extra)
	fields[model.FieldStatus] = status

	err := s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateCountTx(ctx, tx, fields, model.FilterByIDAndStatus(booking.ID, booking.Status))
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if affected == 0 {
			return failure.InvalidState("booking status changed, reload and try again")
		}

		if capacity == nil {
			return nil
		}

		return capacity(tx)
	})
	if err != nil {
		if failure.GetKind(err) == failure.KindInternal {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("status", status).Msg("failed to transition booking")
		}

		return err //nolint:wrapcheck
	}

	from := booking.Status
	booking.Status = status

	s.metrics.ObserveTransition(booking.TargetType(), from, status)
	event.PublishAsync(ctx, s.publisher, booking.Event(status))
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) reserve(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (bool, error) {
	if booking.TargetType() == model.TargetRide {
		return s.rideRepo.ReserveSeatsTx(ctx, tx, booking.TargetID(), booking.Quantity) //nolint:wrapcheck
	}

	return s.accommodationRepo.ReserveRoomsTx(ctx, tx, booking.TargetID(), booking.Quantity) //nolint:wrapcheck
}

func (s *serviceImpl) release(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (bool, error) {
	if booking.TargetType() == model.TargetRide {
		return s.rideRepo.ReleaseSeatsTx(ctx, tx, booking.TargetID(), booking.Quantity) //nolint:wrapcheck
	}

	return s.accommodationRepo.ReleaseRoomsTx(ctx, tx, booking.TargetID(), booking.Quantity) //nolint:wrapcheck
}

// giveBack returns the booking's quantity to its listing inside the transition.
func (s *serviceImpl) giveBack(ctx context.Context, booking model.Booking) func(tx *sqlx.Tx) error {
	return func(tx *sqlx.Tx) error {
		ok, err := s.release(ctx, tx, booking)
		if err != nil {
			return err
		}

		if !ok {
			return errCapacityOutOfSync
		}

		return nil
	}
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

// providerBooking loads a booking the caller provides the listing for.
func (s *serviceImpl) providerBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return booking, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.ProviderID != actor {
		return booking, failure.Forbidden("you do not provide this listing")
	}

	return booking, nil
}

func (s *serviceImpl) customer(ctx context.Context) (userModel.User, error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		return userModel.User{}, failure.Unauthorized("missing principal")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(actor, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return user, fmt.Errorf("failed to get customer: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.Forbidden("register before booking")
	}

	if !user.Active {
		return user, failure.Forbidden("account is deactivated")
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()
}

// invalidateTarget drops cached listings whose remaining capacity changed.
func (s *serviceImpl) invalidateTarget(ctx context.Context, booking model.Booking) {
	getPrefix, listPrefix := rideModel.CacheGet, rideModel.CacheGetAll
	if booking.TargetType() == model.TargetAccommodation {
		getPrefix, listPrefix = accommodationModel.CacheGet, accommodationModel.CacheGetAll
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(getPrefix, booking.TargetID())); err != nil {
			log.Error().Err(err).Msg("failed to delete listing from cache")
		}

		shared.InvalidateCaches(c, s.cache, listPrefix)
	}()
}
