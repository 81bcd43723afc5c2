package service

import (
	"context"
	"fmt"

	"linka/config"
	"linka/infras/otel"
	"linka/infras/s3"
	"linka/internal/domains/user/model"
	"linka/internal/domains/user/model/dto"
	"linka/internal/domains/user/repository"
	"linka/shared"
	"linka/shared/cache"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/failure"

	"github.com/rs/zerolog/log"
)

const verificationDirectory = "verification"

type User interface {
	Me(ctx context.Context) (dto.UserResponse, error)
	UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) error
	SubmitVerification(ctx context.Context, req dto.SubmitVerificationRequest) error
	Get(ctx context.Context, id string) (dto.PublicUserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	ReviewVerification(ctx context.Context, id string, req dto.ReviewVerificationRequest) error
	Deactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, err := s.current(ctx)
	if err != nil {
		return err
	}

	if req.EnablesOffering() && !user.IsVerified() {
		return failure.Forbidden("only verified users can offer rides or stays")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user.ID), shared.FilterByID(user.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx, user.ID)

	return nil
}

func (s *serviceImpl) SubmitVerification(ctx context.Context, req dto.SubmitVerificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitVerification")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.current(ctx)
	if err != nil {
		return err
	}

	if user.IsVerified() {
		return failure.InvalidState("user is already verified")
	}

	url, err := s.s3.Upload(ctx, verificationDirectory, req.DocumentFile, req.Document)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload verification document")

		return fmt.Errorf("failed to upload verification document: %w", err)
	}

	fields := shared.TransformFields(struct{}{}, user.ID)
	fields[model.FieldVerificationStatus] = model.VerificationPending
	fields[model.FieldVerificationDocument] = url
	fields[model.FieldVerificationNote] = nil

	if err = s.repo.Update(ctx, fields, shared.FilterByID(user.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to submit verification")

		if delErr := s.s3.Delete(context.WithoutCancel(ctx), url); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up verification document")
		}

		return fmt.Errorf("failed to submit verification: %w", err)
	}

	if user.VerificationDocument != nil {
		go func(previous string) {
			if delErr := s.s3.Delete(context.WithoutCancel(ctx), previous); delErr != nil {
				log.Error().Err(delErr).Msg("failed to delete previous verification document")
			}
		}(*user.VerificationDocument)
	}

	s.invalidate(ctx, user.ID)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PublicUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Sanitize(constant.FieldCreatedAt, model.FieldFullName, model.FieldRating)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ReviewVerification(ctx context.Context, id string, req dto.ReviewVerificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewVerification")
	defer scope.End()
	defer scope.TraceIfError(&err)

	reviewer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found")
	}

	if user.VerificationStatus != model.VerificationPending {
		return failure.InvalidState("user has no pending verification")
	}

	fields := shared.TransformFields(struct{}{}, reviewer)
	fields[model.FieldVerificationStatus] = req.Status

	if req.Note != constant.Empty {
		fields[model.FieldVerificationNote] = req.Note
	}

	if req.Status == model.VerificationRejected {
		fields[model.FieldCanOfferRides] = false
		fields[model.FieldCanOfferStays] = false
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to review verification")

		return fmt.Errorf("failed to review verification: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found")
	}

	fields := shared.TransformFields(struct{}{}, actor)
	fields[model.FieldActive] = false

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate user")

		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// current loads the registered user behind the request principal.
func (s *serviceImpl) current(ctx context.Context) (model.User, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return model.User{}, failure.Unauthorized("missing principal")
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return model.User{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if user.ID == constant.Empty {
		return model.User{}, failure.NotFound("user is not registered")
	}

	if !user.Active {
		return model.User{}, failure.Forbidden("user is deactivated")
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()
}
