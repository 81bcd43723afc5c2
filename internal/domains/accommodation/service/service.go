package service

import (
	"context"
	"fmt"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/infras/s3"
	"linka/internal/domains/accommodation/model"
	"linka/internal/domains/accommodation/model/dto"
	"linka/internal/domains/accommodation/repository"
	bookingModel "linka/internal/domains/booking/model"
	bookingRepository "linka/internal/domains/booking/repository"
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
	imageDirectory         = "accommodations"
	reasonListingCancelled = "listing cancelled by host"
)

type Accommodation interface {
	Create(ctx context.Context, req dto.CreateAccommodationRequest) (dto.AccommodationResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, req dto.SearchAccommodationsRequest) (dto.GetAccommodationsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, status string) (dto.GetAccommodationsResponse, error)
	Get(ctx context.Context, id string) (dto.AccommodationResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateAccommodationRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelAccommodationRequest) error
}

type serviceImpl struct {
	repo        repository.Accommodation
	bookingRepo bookingRepository.Booking
	userRepo    userRepository.User
	transactor  postgres.Transactor
	publisher   event.Publisher
	metrics     *metrics.Metrics
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(
	repo repository.Accommodation,
	bookingRepo bookingRepository.Booking,
	userRepo userRepository.User,
	transactor postgres.Transactor,
	publisher event.Publisher,
	metrics *metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Accommodation {
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
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	host, err := s.host(ctx)
	if err != nil {
		return res, err
	}

	from, to, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	var imageURL *string

	if req.Image != nil {
		url, err := s.s3.Upload(ctx, imageDirectory, req.ImageFile, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload accommodation image")

			return res, fmt.Errorf("failed to upload accommodation image: %w", err)
		}

		imageURL = &url
	}

	accommodation := req.ToModel(host.ID, from, to, imageURL)

	if err = s.repo.Insert(ctx, accommodation); err != nil {
		log.Error().Err(err).Msg("failed to create accommodation")
		s.discardImage(ctx, imageURL)

		return res, fmt.Errorf("failed to create accommodation: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(accommodation)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, req dto.SearchAccommodationsRequest) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter, err := req.ToFilter()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(&err)

	hostID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{Field: model.FieldHostID, Operator: gDto.FilterOperatorEq, Value: hostID, Table: model.TableName})

	if status != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName})
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAccommodationsResponse, err error) {
	params.Sanitize(constant.FieldCreatedAt, model.FieldPricePerNight, model.FieldAvailableFrom)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	accommodation, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(accommodation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateAccommodationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	accommodation, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if accommodation.Status != model.StatusActive {
		return failure.InvalidState("only active accommodations can be edited")
	}

	if req.PricePerNight != nil {
		rounded := shared.RoundMoney(*req.PricePerNight)
		req.PricePerNight = &rounded
	}

	fields := shared.TransformFields(req, accommodation.HostID)

	if req.AvailableFrom != nil || req.AvailableTo != nil {
		fromValue := timezone.Format(accommodation.AvailableFrom, constant.DateOnlyFormat)
		if req.AvailableFrom != nil {
			fromValue = *req.AvailableFrom
		}

		toValue := timezone.Format(accommodation.AvailableTo, constant.DateOnlyFormat)
		if req.AvailableTo != nil {
			toValue = *req.AvailableTo
		}

		from, to, err := dto.ParseWindow(fromValue, toValue)
		if err != nil {
			return failure.BadRequest(err)
		}

		fields[model.FieldAvailableFrom] = from
		fields[model.FieldAvailableTo] = to
	}

	var imageURL *string

	if req.Image != nil {
		url, err := s.s3.Upload(ctx, imageDirectory, req.ImageFile, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload accommodation image")

			return fmt.Errorf("failed to upload accommodation image: %w", err)
		}

		imageURL = &url
		fields[model.FieldImage] = url
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update accommodation: %w", err)
		}

		if req.TotalRooms == nil || *req.TotalRooms == accommodation.TotalRooms {
			return nil
		}

		ok, err := s.repo.ResizeRoomsTx(ctx, tx, id, *req.TotalRooms)
		if err != nil {
			return fmt.Errorf("failed to resize accommodation: %w", err)
		}

		if !ok {
			return failure.CapacityExceeded("total rooms cannot drop below rooms already confirmed")
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("accommodation_id", id).Msg("failed to update accommodation")
		s.discardImage(ctx, imageURL)

		return err //nolint:wrapcheck
	}

	if imageURL != nil {
		s.discardImage(ctx, accommodation.Image)
	}

	s.invalidate(ctx, id)

	return nil
}

// Cancel withdraws the listing and cancels every open booking on it.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelAccommodationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	accommodation, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if accommodation.Status != model.StatusActive {
		return failure.InvalidState("accommodation is already " + accommodation.Status)
	}

	reason := req.Reason
	if reason == constant.Empty {
		reason = reasonListingCancelled
	}

	openFilter := bookingModel.FilterByTargetAndStatus(bookingModel.FieldAccommodationID, id, bookingModel.OpenStatuses()...)

	open, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, openFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load open bookings")

		return fmt.Errorf("failed to load open bookings: %w", err)
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		fields := shared.TransformFields(struct{}{}, accommodation.HostID)
		fields[model.FieldStatus] = model.StatusCancelled

		filter := shared.FilterByID(id, model.FieldID, model.TableName)
		filter.Add(gDto.Filter{Field: model.FieldStatus, ArgName: "current_status", Operator: gDto.FilterOperatorEq, Value: model.StatusActive, Table: model.TableName})

		affected, err := s.repo.UpdateCountTx(ctx, tx, fields, filter)
		if err != nil {
			return fmt.Errorf("failed to cancel accommodation: %w", err)
		}

		if affected == 0 {
			return failure.InvalidState("accommodation is no longer active")
		}

		bookingFields := shared.TransformFields(struct{}{}, accommodation.HostID)
		bookingFields[bookingModel.FieldStatus] = bookingModel.StatusCancelled
		bookingFields[bookingModel.FieldCancelledBy] = accommodation.HostID
		bookingFields[bookingModel.FieldCancellationReason] = reason

		return s.bookingRepo.UpdateTx(ctx, tx, bookingFields, openFilter)
	})
	if err != nil {
		log.Error().Err(err).Str("accommodation_id", id).Msg("failed to cancel accommodation")

		return err //nolint:wrapcheck
	}

	events := make([]event.Event, 0, len(open))

	for _, booking := range open {
		s.metrics.ObserveTransition(bookingModel.TargetAccommodation, booking.Status, bookingModel.StatusCancelled)

		events = append(events, booking.Event(bookingModel.StatusCancelled))
	}

	event.PublishAsync(ctx, s.publisher, events...)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Accommodation, error) {
	accommodation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return accommodation, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return accommodation, failure.NotFound("accommodation not found")
	}

	return accommodation, nil
}

func (s *serviceImpl) owned(ctx context.Context, id string) (model.Accommodation, error) {
	accommodation, err := s.find(ctx, id)
	if err != nil {
		return accommodation, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if accommodation.HostID != actor {
		return accommodation, failure.Forbidden("you do not own this accommodation")
	}

	return accommodation, nil
}

func (s *serviceImpl) host(ctx context.Context) (userModel.User, error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(actor, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get host")

		return user, fmt.Errorf("failed to get host: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return user, failure.Forbidden("register before offering stays")
	}

	if !user.CanOfferStays {
		return user, failure.Forbidden("stay offering is not enabled for this account")
	}

	return user, nil
}

func (s *serviceImpl) discardImage(ctx context.Context, url *string) {
	if url == nil || *url == constant.Empty {
		return
	}

	go func() {
		if err := s.s3.Delete(context.WithoutCancel(ctx), *url); err != nil {
			log.Warn().Err(err).Str("url", *url).Msg("failed to delete accommodation image")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete accommodation from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, bookingModel.CacheCount)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CacheGetAll)
	}()
}
