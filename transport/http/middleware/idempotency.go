package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"linka/shared"
	"linka/shared/cache"
	"linka/shared/constant"
	"linka/shared/failure"
	"linka/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyIdempotency = "idempotency"

type storedResponse struct {
	Pending bool   `json:"pending"`
	Status  int    `json:"status"`
	Body    []byte `json:"body"`
}

type recordingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)

	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST carrying an
// Idempotency-Key already seen for the same caller and path. A key whose
// first request is still running answers 409. Server errors are not stored
// so the client may retry.
func (a *appMiddleware) Idempotency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constant.RequestHeaderIdempotencyKey)
		if !a.config.App.Idempotency.Enable || r.Method != http.MethodPost || key == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx := r.Context()
		userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
		cacheKey := shared.BuildCacheKey(cacheKeyIdempotency, userID, r.URL.Path, key)
		ttl := a.config.App.Idempotency.TTLSeconds

		claimed, err := a.cache.SaveNX(ctx, cacheKey, storedResponse{Pending: true}, ttl)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("idempotency store unavailable")
			next.ServeHTTP(w, r)

			return
		}

		if !claimed {
			a.replay(w, r, cacheKey, next)

			return
		}

		recorder := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		storeCtx := context.WithoutCancel(ctx)

		if recorder.status >= http.StatusInternalServerError {
			if err := a.cache.Delete(storeCtx, cacheKey); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to release idempotency key")
			}

			return
		}

		stored := storedResponse{Status: recorder.status, Body: recorder.body.Bytes()}
		if err := a.cache.Save(storeCtx, cacheKey, stored, ttl); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("failed to store idempotent response")
		}
	})
}

func (a *appMiddleware) replay(w http.ResponseWriter, r *http.Request, cacheKey string, next http.Handler) {
	var stored storedResponse

	err := a.cache.Get(r.Context(), cacheKey, &stored)
	if errors.Is(err, cache.Nil) {
		next.ServeHTTP(w, r)

		return
	}

	if err != nil || stored.Pending {
		response.WithError(w, failure.Conflict("a request with this idempotency key is still in progress"))

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.Header().Set(constant.ResponseHeaderIdempotentReplay, "true")
	w.WriteHeader(stored.Status)

	if _, err := w.Write(stored.Body); err != nil {
		log.Error().Err(err).Msg("failed to replay idempotent response")
	}
}
