package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its HTTP code.
type Kind string

const (
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindInvalidState     Kind = "invalid_state"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindInternal         Kind = "internal"
)

var codes = map[Kind]int{
	KindUnauthorized:     http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindInvalidState:     http.StatusConflict,
	KindCapacityExceeded: http.StatusConflict,
	KindNotFound:         http.StatusNotFound,
	KindValidation:       http.StatusBadRequest,
	KindConflict:         http.StatusConflict,
	KindInternal:         http.StatusInternalServerError,
}

// Failure is an error the HTTP layer can render as-is.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

var (
	InvalidPageParam  = New(KindValidation, "invalid page parameter")
	InvalidLimitParam = New(KindValidation, "invalid limit parameter")
	ForbiddenError    = New(KindForbidden, "You don't have the required permissions")
)

// New builds a Failure whose code follows from kind.
func New(kind Kind, msg string) *Failure {
	code, ok := codes[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	return &Failure{Code: code, Message: msg, Kind: kind}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest turns a validation error into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(KindValidation, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(KindValidation, msg)
}

func Unauthorized(msg string) error {
	return New(KindUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

func Conflict(msg string) error {
	return New(KindConflict, msg)
}

// Forbidden is returned when the caller is authenticated but does not own the resource.
func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

// InvalidState is returned when a booking transition is not allowed from its current status.
func InvalidState(msg string) error {
	return New(KindInvalidState, msg)
}

// CapacityExceeded is returned when a requested quantity exceeds the remaining seats or rooms.
func CapacityExceeded(msg string) error {
	return New(KindCapacityExceeded, msg)
}

// GetCode returns the HTTP code carried by err, 500 for anything else.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of err. Unknown errors are internal.
func GetKind(err error) Kind {
	if fail, ok := as(err); ok && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	fail, ok := as(err)

	return ok && fail.Kind == kind
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}
