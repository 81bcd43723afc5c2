package ws

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"linka/config"
	"linka/infras/identity"
	"linka/infras/jwt"
	"linka/infras/otel"
	"linka/shared/constant"
	"linka/shared/failure"
	"linka/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	readBufferSize  = 1024
	writeBufferSize = 1024
)

type Handler struct {
	hub      *Hub
	verifier identity.Verifier
	otel     otel.Otel
	upgrader websocket.Upgrader
}

// NewHandler accepts browser origins from EVENTS_WEBSOCKET_ALLOWED_ORIGINS,
// falling back to the CORS allow-list and then to same-origin only.
func NewHandler(cfg *config.Config, hub *Hub, verifier identity.Verifier, otel otel.Otel) Handler {
	allowed := cfg.Events.WebSocket.AllowedOrigins
	if len(allowed) == 0 {
		allowed = cfg.App.CORS.AllowedOrigins
	}

	return Handler{
		hub:      hub,
		verifier: verifier,
		otel:     otel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin:     checkOrigin(allowed),
		},
	}
}

// checkOrigin lets non-browser clients, which send no Origin, through.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == constant.Empty {
			return true
		}

		if len(allowed) == 0 {
			u, err := url.Parse(origin)

			return err == nil && strings.EqualFold(u.Host, r.Host)
		}

		return slices.Contains(allowed, constant.Asterix) || slices.Contains(allowed, origin)
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Connect)
}

// Connect upgrades the request to a WebSocket that receives booking events
// for the authenticated user.
// @Summary Subscribe to booking events
// @Description Opens a WebSocket. Browsers pass the bearer credential in the token query parameter.
// @Tags Events
// @Param token query string false "Bearer credential"
// @Success 101
// @Failure 401 {object} response.Error
// @Router /api/ws [get]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Connect")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)
	if token == "" {
		var err error

		token, err = jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.Unauthorized("missing credential"))

			return
		}
	}

	principal, err := handler.verifier.Verify(ctx, token)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.Unauthorized("invalid credential"))

		return
	}

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return
	}

	client := newClient(conn, handler.hub, principal.Subject)
	if !handler.hub.attach(client) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()

		return
	}

	go client.writeLoop()
	go client.readLoop()

	scope.AddEvent("WebSocket connected for user " + principal.Subject)
}
