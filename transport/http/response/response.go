package response

import (
	"encoding/json"
	"net/http"

	"linka/shared/constant"
	"linka/shared/failure"
	"linka/shared/logger"

	"github.com/rs/zerolog/log"
)

const internalErrorMessage = "internal server error"

// Data, Message and Error are the three response bodies the API emits.
type Data[T any] struct {
	Data T `json:"data"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string       `json:"error"`
	Kind  failure.Kind `json:"kind"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

// WithError maps err to its failure kind. Anything that is not a domain
// failure is reported as an opaque internal error and logged with its stack.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{Error: err.Error(), Kind: failure.GetKind(err)}

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		body.Error = internalErrorMessage
	}

	write(writer, code, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		raw = []byte(`{"error":"` + internalErrorMessage + `","kind":"internal"}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(raw); err != nil {
		log.Warn().Err(err).Int("status", code).Msg("Failed to write response body")
	}
}
