package service

import (
	"context"
	"fmt"

	"linka/config"
	"linka/infras/identity"
	"linka/infras/jwt"
	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/auth/model/dto"
	sessionModel "linka/internal/domains/session/model"
	sessionRepo "linka/internal/domains/session/repository"
	userModel "linka/internal/domains/user/model"
	userDto "linka/internal/domains/user/model/dto"
	userRepo "linka/internal/domains/user/repository"
	"linka/shared"
	"linka/shared/cache"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/failure"
	gModel "linka/shared/model"
	"linka/shared/password"
	gRepo "linka/shared/repository"
	"linka/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid email or password"

type Auth interface {
	CheckRegistration(ctx context.Context) (dto.CheckRegistrationResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest, client dto.Client) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest, client dto.Client) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo    userRepo.User
	sessionRepo sessionRepo.Session
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(
	userRepo userRepo.User,
	sessionRepo sessionRepo.Session,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) CheckRegistration(ctx context.Context) (res dto.CheckRegistrationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRegistration")
	defer scope.End()
	defer scope.TraceIfError(&err)

	principal, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized("missing principal")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(principal.Subject, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, nil
	}

	res.Registered = true
	res.User = &userDto.UserResponse{}
	res.User.FromModel(user)

	return res, nil
}

// Register creates the users row for a caller on first federated sign-in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(&err)

	principal, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized("missing principal")
	}

	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(principal.Subject, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("user is already registered")
	}

	if err = s.ensureEmailFree(ctx, principal.Email); err != nil {
		return res, err
	}

	user := userDto.NewUser(principal.Subject, principal.Email, req.FullName, nil)
	user.Phone = req.Phone

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("user already registered")
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidateUsers(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.ensureEmailFree(ctx, req.Email); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := userDto.NewUser(uuid.NewString(), req.Email, req.FullName, &hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("user already registered")
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidateUsers(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest, client dto.Client) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	emailFilter := emailFilter(req.Email)

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || user.Password == nil {
		password.Burn(req.Password)
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Verify(req.Password, *user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated")
	}

	session := newSession(user.ID, client)

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, subjectOf(user, session.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.ExpiresAt = tokenPair.RefreshUntil

	if err = s.sessionRepo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	fields := shared.TransformFields(struct{}{}, user.ID)
	fields[userModel.FieldLastLogin] = timezone.Now()

	if err := s.userRepo.Update(ctx, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

// RefreshToken rotates the session: the presented token is revoked and a new pair is issued.
// A revoked token presented again is rejected.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest, client dto.Client) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	current, err := s.sessionRepo.Get(ctx, shared.FilterByID(claims.SessionID, sessionModel.FieldID, sessionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	if !current.IsUsable(timezone.Now()) || current.UserID != claims.UserID {
		return res, failure.Unauthorized("session is no longer valid")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return res, failure.Unauthorized("session is no longer valid")
	}

	next := newSession(user.ID, client)

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, subjectOf(user, next.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	next.ExpiresAt = tokenPair.RefreshUntil

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.sessionRepo.UpdateCountTx(ctx, tx, revokeFields(user.ID), activeSessionFilter(current.ID))
		if err != nil {
			return fmt.Errorf("failed to revoke session: %w", err)
		}

		if affected == 0 {
			return failure.Unauthorized("session is no longer valid")
		}

		return s.sessionRepo.InsertTx(ctx, tx, next)
	})
	if err != nil {
		log.Warn().Err(err).Str("session_id", current.ID).Msg("failed to rotate session")

		return res, err //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return failure.Unauthorized("invalid refresh token")
	}

	if err = s.sessionRepo.Update(ctx, revokeFields(claims.UserID), activeSessionFilter(claims.SessionID)); err != nil {
		log.Error().Err(err).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// ChangePassword updates a local account's password and revokes all of its sessions.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found")
	}

	if user.Password == nil {
		return failure.BadRequestFromString("password is managed by the identity provider")
	}

	if err := password.Verify(req.CurrentPassword, *user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(struct{}{}, userID)
	fields[userModel.FieldPassword] = hashedPassword

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	sessions := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	sessions.Add(
		gDto.Filter{Field: sessionModel.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: sessionModel.TableName},
		gDto.Filter{Field: sessionModel.FieldRevoked, ArgName: "currently_revoked", Operator: gDto.FilterOperatorEq, Value: false, Table: sessionModel.TableName},
	)

	if err = s.sessionRepo.Update(ctx, revokeFields(userID), sessions); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to revoke sessions after password change")
	}

	return nil
}

func (s *serviceImpl) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.userRepo.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return fmt.Errorf("failed to check if email exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered")
	}

	return nil
}

func (s *serviceImpl) invalidateUsers(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, userModel.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, userModel.CacheCount)
	}()
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func activeSessionFilter(id string) gDto.FilterGroup {
	filter := shared.FilterByID(id, sessionModel.FieldID, sessionModel.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Add(gDto.Filter{Field: sessionModel.FieldRevoked, ArgName: "currently_revoked", Operator: gDto.FilterOperatorEq, Value: false, Table: sessionModel.TableName})

	return filter
}

func revokeFields(actor string) map[string]any {
	fields := gModel.Touched(timezone.Now(), actor)
	fields[sessionModel.FieldRevoked] = true

	return fields
}

func newSession(userID string, client dto.Client) sessionModel.Session {
	now := timezone.Now()

	session := sessionModel.Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Metadata: gModel.NewMetadata(now, userID),
	}

	if client.UserAgent != constant.Empty {
		session.UserAgent = &client.UserAgent
	}

	if client.IPAddress != constant.Empty {
		session.IPAddress = &client.IPAddress
	}

	return session
}

func subjectOf(user userModel.User, sessionID string) jwt.Subject {
	return jwt.Subject{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.FullName,
		Role:      user.Role,
		SessionID: sessionID,
	}
}
