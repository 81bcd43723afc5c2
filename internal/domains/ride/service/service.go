package service

import (
	"context"
	"fmt"
	"time"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/infras/postgres"
	bookingModel "linka/internal/domains/booking/model"
	bookingRepository "linka/internal/domains/booking/repository"
	"linka/internal/domains/ride/model"
	"linka/internal/domains/ride/model/dto"
	"linka/internal/domains/ride/repository"
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
	reasonRideCancelled = "ride cancelled by driver"
	reasonRideCompleted = "ride completed before approval"
)

type Ride interface {
	Create(ctx context.Context, req dto.CreateRideRequest) (dto.RideResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, req dto.SearchRidesRequest) (dto.GetRidesResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, status string) (dto.GetRidesResponse, error)
	Get(ctx context.Context, id string) (dto.RideResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRideRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelRideRequest) error
	Complete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Ride
	bookingRepo bookingRepository.Booking
	userRepo    userRepository.User
	transactor  postgres.Transactor
	publisher   event.Publisher
	metrics     *metrics.Metrics
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Ride,
	bookingRepo bookingRepository.Booking,
	userRepo userRepository.User,
	transactor postgres.Transactor,
	publisher event.Publisher,
	metrics *metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Ride {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		transactor:  transactor,
		publisher:   publisher,
		metrics:     metrics,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRideRequest) (res dto.RideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	driver, err := s.driver(ctx)
	if err != nil {
		return res, err
	}

	if !req.DepartureAt.After(timezone.Now()) {
		return res, failure.BadRequestFromString("departure_at must be in the future")
	}

	ride := req.ToModel(driver.ID)

	if err = s.repo.Insert(ctx, ride); err != nil {
		log.Error().Err(err).Msg("failed to create ride")

		return res, fmt.Errorf("failed to create ride: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(ride)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, req dto.SearchRidesRequest) (res dto.GetRidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(&err)

	// minute granularity keeps the cache key stable between requests
	filter, err := req.ToFilter(timezone.Now().Truncate(time.Minute))
	if err != nil {
		return res, failure.BadRequest(err)
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetRidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(&err)

	driverID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{Field: model.FieldDriverID, Operator: gDto.FilterOperatorEq, Value: driverID, Table: model.TableName})

	if status != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName})
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRidesResponse, err error) {
	params.Sanitize(constant.FieldCreatedAt, model.FieldDepartureAt, model.FieldPricePerSeat)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rides")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rides")

		return res, fmt.Errorf("failed to get rides: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rides to cache")
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
		log.Error().Err(err).Msg("failed to count rides")

		return res, fmt.Errorf("failed to count rides: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ride count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for ride")

		return res, nil
	}

	ride, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(ride)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ride to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	ride, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if ride.Status != model.StatusActive {
		return failure.InvalidState("only active rides can be edited")
	}

	if req.DepartureAt != nil && !req.DepartureAt.After(timezone.Now()) {
		return failure.BadRequestFromString("departure_at must be in the future")
	}

	if req.PricePerSeat != nil {
		rounded := shared.RoundMoney(*req.PricePerSeat)
		req.PricePerSeat = &rounded
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, ride.DriverID), filter); err != nil {
			return fmt.Errorf("failed to update ride: %w", err)
		}

		if req.TotalSeats == nil || *req.TotalSeats == ride.TotalSeats {
			return nil
		}

		ok, err := s.repo.ResizeSeatsTx(ctx, tx, id, *req.TotalSeats)
		if err != nil {
			return fmt.Errorf("failed to resize ride: %w", err)
		}

		if !ok {
			return failure.CapacityExceeded("total seats cannot drop below seats already confirmed")
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("ride_id", id).Msg("failed to update ride")

		return err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// Cancel closes the ride and cancels every open booking on it.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelRideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ride, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if ride.Status != model.StatusActive {
		return failure.InvalidState("ride is already " + ride.Status)
	}

	reason := req.Reason
	if reason == constant.Empty {
		reason = reasonRideCancelled
	}

	open, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingModel.FilterByTargetAndStatus(bookingModel.FieldRideID, id, bookingModel.OpenStatuses()...))
	if err != nil {
		log.Error().Err(err).Msg("failed to load open bookings")

		return fmt.Errorf("failed to load open bookings: %w", err)
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.closeRide(ctx, tx, ride, model.StatusCancelled); err != nil {
			return err
		}

		fields := shared.TransformFields(struct{}{}, ride.DriverID)
		fields[bookingModel.FieldStatus] = bookingModel.StatusCancelled
		fields[bookingModel.FieldCancelledBy] = ride.DriverID
		fields[bookingModel.FieldCancellationReason] = reason

		return s.bookingRepo.UpdateTx(ctx, tx, fields, bookingModel.FilterByTargetAndStatus(bookingModel.FieldRideID, id, bookingModel.OpenStatuses()...))
	})
	if err != nil {
		log.Error().Err(err).Str("ride_id", id).Msg("failed to cancel ride")

		return err //nolint:wrapcheck
	}

	events := make([]event.Event, 0, len(open))

	for _, booking := range open {
		s.metrics.ObserveTransition(bookingModel.TargetRide, booking.Status, bookingModel.StatusCancelled)

		events = append(events, booking.Event(bookingModel.StatusCancelled))
	}

	event.PublishAsync(ctx, s.publisher, events...)
	s.invalidate(ctx, id)

	return nil
}

// Complete closes the ride: confirmed bookings complete, pending ones are cancelled.
func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ride, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if ride.Status != model.StatusActive {
		return failure.InvalidState("ride is already " + ride.Status)
	}

	open, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingModel.FilterByTargetAndStatus(bookingModel.FieldRideID, id, bookingModel.OpenStatuses()...))
	if err != nil {
		log.Error().Err(err).Msg("failed to load open bookings")

		return fmt.Errorf("failed to load open bookings: %w", err)
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.closeRide(ctx, tx, ride, model.StatusCompleted); err != nil {
			return err
		}

		completed := shared.TransformFields(struct{}{}, ride.DriverID)
		completed[bookingModel.FieldStatus] = bookingModel.StatusCompleted

		err := s.bookingRepo.UpdateTx(ctx, tx, completed, bookingModel.FilterByTargetAndStatus(bookingModel.FieldRideID, id, bookingModel.StatusConfirmed))
		if err != nil {
			return err //nolint:wrapcheck
		}

		cancelled := shared.TransformFields(struct{}{}, ride.DriverID)
		cancelled[bookingModel.FieldStatus] = bookingModel.StatusCancelled
		cancelled[bookingModel.FieldCancelledBy] = ride.DriverID
		cancelled[bookingModel.FieldCancellationReason] = reasonRideCompleted

		return s.bookingRepo.UpdateTx(ctx, tx, cancelled, bookingModel.FilterByTargetAndStatus(bookingModel.FieldRideID, id, bookingModel.StatusPending))
	})
	if err != nil {
		log.Error().Err(err).Str("ride_id", id).Msg("failed to complete ride")

		return err //nolint:wrapcheck
	}

	events := make([]event.Event, 0, len(open))

	for _, booking := range open {
		next := bookingModel.StatusCancelled
		if booking.Status == bookingModel.StatusConfirmed {
			next = bookingModel.StatusCompleted
		}

		s.metrics.ObserveTransition(bookingModel.TargetRide, booking.Status, next)

		events = append(events, booking.Event(next))
	}

	event.PublishAsync(ctx, s.publisher, events...)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) closeRide(ctx context.Context, tx *sqlx.Tx, ride model.Ride, status string) error {
	fields := shared.TransformFields(struct{}{}, ride.DriverID)
	fields[model.FieldStatus] = status

	filter := shared.FilterByID(ride.ID, model.FieldID, model.TableName)
	filter.Add(gDto.Filter{Field: model.FieldStatus, ArgName: "current_status", Operator: gDto.FilterOperatorEq, Value: model.StatusActive, Table: model.TableName})

	affected, err := s.repo.UpdateCountTx(ctx, tx, fields, filter)
	if err != nil {
		return fmt.Errorf("failed to close ride: %w", err)
	}

	if affected == 0 {
		return failure.InvalidState("ride is no longer active")
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Ride, error) {
	ride, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ride")

		return ride, fmt.Errorf("failed to get ride: %w", err)
	}

	if ride.ID == constant.Empty {
		return ride, failure.NotFound("ride not found")
	}

	return ride, nil
}

func (s *serviceImpl) owned(ctx context.Context, id string) (model.Ride, error) {
	ride, err := s.find(ctx, id)
	if err != nil {
		return ride, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if ride.DriverID != actor {
		return ride, failure.Forbidden("you do not own this ride")
	}

	return ride, nil
}

// driver loads the caller and checks they may publish rides.
func (s *serviceImpl) driver(ctx context.Context) (userModel.User, error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(actor, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get driver")

		return user, fmt.Errorf("failed to get driver: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return user, failure.Forbidden("register before offering rides")
	}

	if !user.CanOfferRides {
		return user, failure.Forbidden("ride offering is not enabled for this account")
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete ride from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheCount)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()
}
