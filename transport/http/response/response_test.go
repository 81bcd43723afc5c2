package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"linka/shared/failure"
	"linka/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		wantKind string
	}{
		{
			name:     "capacity exceeded",
			err:      failure.CapacityExceeded("not enough seats available"),
			wantCode: http.StatusConflict,
			wantMsg:  "not enough seats available",
			wantKind: "capacity_exceeded",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("you do not own this ride"),
			wantCode: http.StatusForbidden,
			wantMsg:  "you do not own this ride",
			wantKind: "forbidden",
		},
		{
			name:     "database error is hidden",
			err:      errors.New("pq: relation \"bookings\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
			wantKind: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			var body map[string]string

			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Equal(t, tt.wantKind, body["kind"])
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"available_seats": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"available_seats":1}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]any{"events": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error","kind":"internal"}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Booking approved successfully")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking approved successfully"}`, rec.Body.String())
}
