package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linka/config"
	"linka/infras/otel/mocks"
	s3Mocks "linka/infras/s3/mocks"
	userMocks "linka/internal/domains/user/mocks"
	"linka/internal/domains/user/model"
	"linka/internal/domains/user/model/dto"
	"linka/internal/domains/user/service"
	cacheMocks "linka/shared/cache/mocks"
	"linka/shared/constant"
	"linka/shared/failure"
)

func withUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	// cache writes and invalidation run in background goroutines
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, &config.Config{}, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func TestUserService_Me(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "registered user",
			ctx:  withUser("uid-1"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-1", Email: "a@linka.app", Active: true}, nil)
			},
		},
		{
			name:     "missing principal",
			ctx:      context.Background(),
			setup:    func(fixture) {},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "not registered",
			ctx:  withUser("uid-2"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "deactivated",
			ctx:  withUser("uid-3"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-3"}, nil)
			},
			wantKind: failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Me(tt.ctx)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "uid-1", res.ID)
		})
	}
}

func TestUserService_UpdateMe(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		req      dto.UpdateProfileRequest
		update   bool
		wantKind failure.Kind
	}{
		{
			name:   "profile fields",
			user:   model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationUnverified},
			req:    dto.UpdateProfileRequest{FullName: stringPtr("Dewi")},
			update: true,
		},
		{
			name:     "unverified user cannot offer rides",
			user:     model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationPending},
			req:      dto.UpdateProfileRequest{CanOfferRides: boolPtr(true)},
			wantKind: failure.KindForbidden,
		},
		{
			name:   "verified user can offer stays",
			user:   model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationVerified},
			req:    dto.UpdateProfileRequest{CanOfferStays: boolPtr(true)},
			update: true,
		},
		{
			name:   "anyone can switch offering off",
			user:   model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationUnverified},
			req:    dto.UpdateProfileRequest{CanOfferRides: boolPtr(false)},
			update: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user, nil)

			if tt.update {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, tt.user.ID, fields[constant.FieldModifiedBy])

						return nil
					})
			}

			err := f.svc.UpdateMe(withUser(tt.user.ID), tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUserService_UpdateMe_EmptyRequest(t *testing.T) {
	f := newFixture(t)

	err := f.svc.UpdateMe(withUser("uid-1"), dto.UpdateProfileRequest{})

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestUserService_SubmitVerification(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "ktp.png",
		Header:   textproto.MIMEHeader{constant.RequestHeaderContentType: []string{"image/png"}},
	}

	t.Run("uploads and marks pending", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationUnverified}, nil)
		f.s3.EXPECT().Upload(gomock.Any(), "verification", gomock.Any(), header).Return("https://cdn/verification/x.png", nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.VerificationPending, fields[model.FieldVerificationStatus])
				assert.Equal(t, "https://cdn/verification/x.png", fields[model.FieldVerificationDocument])

				return nil
			})

		require.NoError(t, f.svc.SubmitVerification(withUser("uid-1"), dto.SubmitVerificationRequest{Document: header}))
	})

	t.Run("removes upload when the update fails", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-1", Active: true}, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/verification/y.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/verification/y.png").Return(nil)

		err := f.svc.SubmitVerification(withUser("uid-1"), dto.SubmitVerificationRequest{Document: header})
		require.Error(t, err)
	})

	t.Run("already verified", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-1", Active: true, VerificationStatus: model.VerificationVerified}, nil)

		err := f.svc.SubmitVerification(withUser("uid-1"), dto.SubmitVerificationRequest{Document: header})
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})
}

func TestUserService_ReviewVerification(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		req      dto.ReviewVerificationRequest
		check    func(t *testing.T, fields map[string]any)
		wantKind failure.Kind
	}{
		{
			name: "approve",
			user: model.User{ID: "uid-1", VerificationStatus: model.VerificationPending},
			req:  dto.ReviewVerificationRequest{Status: model.VerificationVerified},
			check: func(t *testing.T, fields map[string]any) {
				assert.Equal(t, model.VerificationVerified, fields[model.FieldVerificationStatus])
				assert.NotContains(t, fields, model.FieldCanOfferRides)
			},
		},
		{
			name: "reject revokes offering",
			user: model.User{ID: "uid-1", VerificationStatus: model.VerificationPending, CanOfferRides: true},
			req:  dto.ReviewVerificationRequest{Status: model.VerificationRejected, Note: "blurry photo"},
			check: func(t *testing.T, fields map[string]any) {
				assert.Equal(t, model.VerificationRejected, fields[model.FieldVerificationStatus])
				assert.Equal(t, "blurry photo", fields[model.FieldVerificationNote])
				assert.Equal(t, false, fields[model.FieldCanOfferRides])
				assert.Equal(t, false, fields[model.FieldCanOfferStays])
			},
		},
		{
			name:     "nothing pending",
			user:     model.User{ID: "uid-1", VerificationStatus: model.VerificationUnverified},
			req:      dto.ReviewVerificationRequest{Status: model.VerificationVerified},
			wantKind: failure.KindInvalidState,
		},
		{
			name:     "unknown user",
			user:     model.User{},
			req:      dto.ReviewVerificationRequest{Status: model.VerificationVerified},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user, nil)

			if tt.check != nil {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						tt.check(t, fields)

						return nil
					})
			}

			err := f.svc.ReviewVerification(withUser("admin-1"), "uid-1", tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUserService_Get_HidesInactiveUsers(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "uid-1", Active: false}, nil)

	_, err := f.svc.Get(context.Background(), "uid-1")

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestUserService_Deactivate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, false, fields[model.FieldActive])

			return nil
		})

	require.NoError(t, f.svc.Deactivate(withUser("admin-1"), "uid-1"))
}
