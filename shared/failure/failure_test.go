package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"linka/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{"bad request", failure.BadRequest(errors.New("quantity is required")), http.StatusBadRequest, failure.KindValidation, "quantity is required"},
		{"bad request from string", failure.BadRequestFromString("invalid date"), http.StatusBadRequest, failure.KindValidation, "invalid date"},
		{"unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, failure.KindUnauthorized, "token expired"},
		{"forbidden", failure.Forbidden("not your ride"), http.StatusForbidden, failure.KindForbidden, "not your ride"},
		{"not found", failure.NotFound("booking not found"), http.StatusNotFound, failure.KindNotFound, "booking not found"},
		{"conflict", failure.Conflict("user already registered"), http.StatusConflict, failure.KindConflict, "user already registered"},
		{"invalid state", failure.InvalidState("booking is not pending"), http.StatusConflict, failure.KindInvalidState, "booking is not pending"},
		{"capacity exceeded", failure.CapacityExceeded("not enough seats"), http.StatusConflict, failure.KindCapacityExceeded, "not enough seats"},
		{"unknown kind", failure.New(failure.Kind("teapot"), "brew"), http.StatusInternalServerError, failure.Kind("teapot"), "brew"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.message, f.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, failure.KindForbidden, failure.ForbiddenError.Kind)
}

func TestGetCodeAndKind(t *testing.T) {
	wrapped := fmt.Errorf("failed to approve booking: %w", failure.CapacityExceeded("not enough seats"))

	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{"failure", failure.NotFound("ride not found"), http.StatusNotFound, failure.KindNotFound},
		{"wrapped failure", wrapped, http.StatusConflict, failure.KindCapacityExceeded},
		{"plain error", errors.New("pq: connection refused"), http.StatusInternalServerError, failure.KindInternal},
		{"nil error", nil, http.StatusInternalServerError, failure.KindInternal},
		{"failure without kind", &failure.Failure{Code: http.StatusTeapot}, http.StatusTeapot, failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", failure.InvalidState("booking is completed"))

	assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	assert.False(t, failure.IsKind(err, failure.KindCapacityExceeded))
	assert.False(t, failure.IsKind(errors.New("plain"), failure.KindInvalidState))
}
