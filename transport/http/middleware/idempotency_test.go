package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"linka/config"
	otelMocks "linka/infras/otel/mocks"
	"linka/shared/cache"
	cacheMocks "linka/shared/cache/mocks"
	"linka/shared/constant"
	"linka/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func idempotencyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Idempotency.Enable = true
	cfg.App.Idempotency.TTLSeconds = 60

	return cfg
}

func countingHandler(calls *int, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"data":{"id":"booking-1"}}`))
	})
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/create", nil)
	if key != "" {
		req.Header.Set(constant.RequestHeaderIdempotencyKey, key)
	}

	return req
}

func TestIdempotency_FirstRequestIsStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(true, nil)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

	calls := 0
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), idempotencyConfig(), redisCache, nil)

	rec := httptest.NewRecorder()
	app.Idempotency(countingHandler(&calls, http.StatusCreated)).ServeHTTP(rec, postWithKey("key-1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_ServerErrorReleasesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(true, nil)
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	calls := 0
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), idempotencyConfig(), redisCache, nil)

	rec := httptest.NewRecorder()
	app.Idempotency(countingHandler(&calls, http.StatusInternalServerError)).ServeHTTP(rec, postWithKey("key-1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(false, nil)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			return jsonInto(value, `{"pending":false,"status":201,"body":"eyJkYXRhIjp7ImlkIjoiYm9va2luZy0xIn19"}`)
		})

	calls := 0
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), idempotencyConfig(), redisCache, nil)

	rec := httptest.NewRecorder()
	app.Idempotency(countingHandler(&calls, http.StatusCreated)).ServeHTTP(rec, postWithKey("key-1"))

	assert.Equal(t, 0, calls)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, `{"data":{"id":"booking-1"}}`, rec.Body.String())
}

func TestIdempotency_InFlightConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(false, nil)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			return jsonInto(value, `{"pending":true}`)
		})

	calls := 0
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), idempotencyConfig(), redisCache, nil)

	rec := httptest.NewRecorder()
	app.Idempotency(countingHandler(&calls, http.StatusCreated)).ServeHTTP(rec, postWithKey("key-1"))

	assert.Equal(t, 0, calls)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestIdempotency_Passthrough(t *testing.T) {
	tests := []struct {
		name    string
		request func() *http.Request
		setup   func(redisCache *cacheMocks.MockRedisCache)
	}{
		{
			name:    "no key",
			request: func() *http.Request { return postWithKey("") },
			setup:   func(_ *cacheMocks.MockRedisCache) {},
		},
		{
			name: "not a post",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPatch, "/api/rides/1", nil)
				req.Header.Set(constant.RequestHeaderIdempotencyKey, "key-1")

				return req
			},
			setup: func(_ *cacheMocks.MockRedisCache) {},
		},
		{
			name:    "store unavailable",
			request: func() *http.Request { return postWithKey("key-1") },
			setup: func(redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(false, errors.New("connection refused"))
			},
		},
		{
			name:    "stored entry expired between calls",
			request: func() *http.Request { return postWithKey("key-1") },
			setup: func(redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().SaveNX(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(false, nil)
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			calls := 0
			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), idempotencyConfig(), redisCache, nil)

			rec := httptest.NewRecorder()
			app.Idempotency(countingHandler(&calls, http.StatusCreated)).ServeHTTP(rec, tt.request())

			require.Equal(t, 1, calls)
			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func jsonInto(value any, raw string) error {
	return json.Unmarshal([]byte(raw), value)
}
