package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linka/config"
	"linka/infras/identity"
	"linka/infras/jwt"
	jwtMocks "linka/infras/jwt/mocks"
	"linka/infras/otel/mocks"
	pgMocks "linka/infras/postgres/mocks"
	"linka/internal/domains/auth/model/dto"
	"linka/internal/domains/auth/service"
	sessionMocks "linka/internal/domains/session/mocks"
	sessionModel "linka/internal/domains/session/model"
	userMocks "linka/internal/domains/user/mocks"
	userModel "linka/internal/domains/user/model"
	cacheMocks "linka/shared/cache/mocks"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/failure"
	"linka/shared/timezone"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func stringPtr(s string) *string {
	return &s
}

type fixture struct {
	users    *userMocks.MockUser
	sessions *sessionMocks.MockSession
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		users:    userMocks.NewMockUser(ctrl),
		sessions: sessionMocks.NewMockSession(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tx := pgMocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	f.svc = service.New(f.users, f.sessions, tx, &config.Config{}, redis, mocks.NewOtel(), f.jwt)

	return f
}

func localUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		FullName: "Test User",
		Password: stringPtr(passwordHash),
		Role:     constant.RoleUser,
		Active:   true,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
		RefreshUntil: timezone.Now().Add(time.Hour),
	}
}

func TestAuthService_Login(t *testing.T) {
	client := dto.Client{UserAgent: "curl/8", IPAddress: "10.0.0.1"}

	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, subject jwt.Subject) (*jwt.TokenPair, error) {
						assert.Equal(t, "user-id-123", subject.UserID)
						assert.NotEmpty(t, subject.SessionID)

						return tokenPair(), nil
					})
				f.sessions.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, session sessionModel.Session) error {
						assert.Equal(t, "user-id-123", session.UserID)
						assert.Equal(t, "curl/8", *session.UserAgent)
						assert.False(t, session.ExpiresAt.IsZero())

						return nil
					})
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("ignored"))
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrong"},
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "federated account has no password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setup: func(f fixture) {
				user := localUser()
				user.Password = nil
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "deactivated",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setup: func(f fixture) {
				user := localUser()
				user.Active = false
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Login(context.Background(), tt.req, client)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "user-id-123", res.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	claims := &jwt.Claims{UserID: "user-id-123", SessionID: "session-1", Type: jwt.RefreshToken}
	active := sessionModel.Session{ID: "session-1", UserID: "user-id-123", ExpiresAt: timezone.Now().Add(time.Hour)}

	tests := []struct {
		name     string
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "rotates the session",
			setup: func(f fixture) {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), "refresh-token", jwt.RefreshToken).Return(claims, nil)
				f.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.sessions.EXPECT().UpdateCountTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.sessions.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, session sessionModel.Session) error {
						assert.NotEqual(t, "session-1", session.ID)

						return nil
					})
			},
		},
		{
			name: "invalid token",
			setup: func(f fixture) {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "revoked session",
			setup: func(f fixture) {
				revoked := active
				revoked.Revoked = true

				f.jwt.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.RefreshToken).Return(claims, nil)
				f.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(revoked, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "concurrent reuse",
			setup: func(f fixture) {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.RefreshToken).Return(claims, nil)
				f.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.sessions.EXPECT().UpdateCountTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantKind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"}, dto.Client{})

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	principal := identity.Principal{Subject: "firebase-uid", Email: "new@example.com", Provider: identity.ProviderFirebase}

	t.Run("first sign-in", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "firebase-uid", user.ID)
				assert.Nil(t, user.Password)
				assert.Equal(t, userModel.VerificationUnverified, user.VerificationStatus)

				return nil
			})

		res, err := f.svc.Register(identity.WithPrincipal(context.Background(), principal), dto.RegisterRequest{FullName: "New User"})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", res.Email)
	})

	t.Run("already registered", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(identity.WithPrincipal(context.Background(), principal), dto.RegisterRequest{FullName: "New User"})

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("no principal", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Register(context.Background(), dto.RegisterRequest{FullName: "New User"})

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}

func TestAuthService_CheckRegistration(t *testing.T) {
	f := newFixture(t)
	ctx := identity.WithPrincipal(context.Background(), identity.Principal{Subject: "firebase-uid"})

	f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

	res, err := f.svc.CheckRegistration(ctx)

	require.NoError(t, err)
	assert.False(t, res.Registered)
	assert.Nil(t, res.User)
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Signup(context.Background(), dto.SignupRequest{Email: "test@example.com", Password: "password1", FullName: "Test"})

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("hashes the password", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				require.NotNil(t, user.Password)
				assert.NotEqual(t, "password1", *user.Password)

				return nil
			})

		_, err := f.svc.Signup(context.Background(), dto.SignupRequest{Email: "test@example.com", Password: "password1", FullName: "Test"})

		require.NoError(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), "refresh-token", jwt.RefreshToken).
		Return(&jwt.Claims{UserID: "user-id-123", SessionID: "session-1"}, nil)
	f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, true, fields[sessionModel.FieldRevoked])

			return nil
		})

	require.NoError(t, f.svc.Logout(context.Background(), dto.LogoutRequest{RefreshToken: "refresh-token"}))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"})

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("updates and revokes sessions", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(localUser(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"}))
	})
}
