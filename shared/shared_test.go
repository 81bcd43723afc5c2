package shared_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linka/shared"
	"linka/shared/cache/mocks"
	"linka/shared/constant"
	"linka/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{"", nil},
		{"true", boolPtr(true)},
		{"0", boolPtr(false)},
		{"T", boolPtr(true)},
		{"FALSE", boolPtr(false)},
		{"maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 3 ")

	assert.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = shared.ConvertStringToInt("three")

	assert.Error(t, err)
}

func TestConvertStringToFloat(t *testing.T) {
	got, err := shared.ConvertStringToFloat("12.50")

	assert.NoError(t, err)
	assert.InDelta(t, 12.5, got, 0.0001)

	_, err = shared.ConvertStringToFloat("cheap")

	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{"zero total", 0, 10, 1},
		{"zero limit", 100, 0, 1},
		{"negative limit", 100, -5, 1},
		{"exact division", 100, 10, 10},
		{"remainder", 101, 10, 11},
		{"limit larger than total", 5, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRide struct {
		Origin         string   `db:"origin"`
		Destination    string   `db:"destination"`
		TotalSeats     *int     `db:"total_seats"`
		PricePerSeat   *float64 `db:"price_per_seat"`
		Notes          string   `db:"notes"`
		NotPersisted   string
		ExplicitlySkip string `db:"-"`
	}

	seats := 0
	result := shared.TransformFields(updateRide{
		Origin:         "Bandung",
		TotalSeats:     &seats,
		NotPersisted:   "ignored",
		ExplicitlySkip: "ignored",
	}, "driver-1")

	assert.Equal(t, "Bandung", result["origin"])
	assert.Equal(t, 0, result["total_seats"])
	assert.NotContains(t, result, "destination")
	assert.NotContains(t, result, "price_per_seat")
	assert.NotContains(t, result, "notes")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "driver-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "ride-1", Operator: dto.FilterOperatorEq, Table: "rides"},
		},
	}

	assert.Equal(t, expected, shared.FilterByID("ride-1", "id", "rides"))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "linka:ride:get:ride-1", shared.BuildCacheKey("ride:get", "ride-1"))
	assert.Equal(t, "linka:limiter", shared.BuildCacheKey("limiter"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	jakarta := dto.FilterGroup{Filters: []any{dto.Filter{Field: "origin", Value: "Jakarta", Operator: dto.FilterOperatorLike}}}
	bandung := dto.FilterGroup{Filters: []any{dto.Filter{Field: "origin", Value: "Bandung", Operator: dto.FilterOperatorLike}}}

	first := shared.BuildCacheKeyWithQuery("ride:gets", params, jakarta)

	assert.True(t, strings.HasPrefix(first, "linka:ride:gets:"))
	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("ride:gets", params, jakarta))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("ride:gets", params, bandung))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("ride:gets", dto.QueryParams{Page: 2, Limit: 10}, jakarta))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "linka:ride:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "ride:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "linka:ride:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "ride:count")
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 10, expected: 10},
		{in: 10.006, expected: 10.01},
		{in: 33.333333, expected: 33.33},
		{in: 0, expected: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, shared.RoundMoney(tt.in), 0.0001)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, expected: "10.0.0.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 10.0.0.3 "}, expected: "10.0.0.3"},
		{name: "peer address", expected: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/health", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.expected, shared.ClientIP(req))
		})
	}
}

func TestUserAgent(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	assert.Equal(t, "unknown", shared.UserAgent(req))

	req.Header.Set(constant.RequestHeaderUserAgent, "linka-mobile/1.0")
	assert.Equal(t, "linka-mobile/1.0", shared.UserAgent(req))
}
