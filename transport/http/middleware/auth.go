package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"linka/config"
	"linka/infras/identity"
	"linka/infras/jwt"
	"linka/infras/otel"
	"linka/permissions"
	"linka/shared/constant"
	"linka/shared/failure"
	"linka/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type internalCallerKey struct{}

// AuthRole guards the /api group: an internal API key, a bearer credential
// and the role table from permissions.json.
type AuthRole interface {
	APIKey(http.Handler) http.Handler
	Auth(http.Handler) http.Handler
	RBAC(http.Handler) http.Handler
}

func internalCaller(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallerKey{}).(bool)

	return internal
}

type authRoleImpl struct {
	verifier   identity.Verifier
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(verifier identity.Verifier, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		verifier:   verifier,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func (m *authRoleImpl) endpoint(request *http.Request) (string, permissions.Permission) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || m.permission == nil {
		return constant.Empty, permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return path, m.permission.FindPermissions(path, request.Method)
}

// Auth resolves the bearer credential to a principal. Endpoints marked skip
// in permissions.json are served without one.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		path, permission := m.endpoint(request)
		if internalCaller(ctx) || permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		fail := func(err error) {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			fail(failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			fail(failure.Unauthorized("Invalid authorization header format"))

			return
		}

		principal, err := m.verifier.Verify(ctx, token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, identity.ErrExpiredCredential) {
				message = "Token has expired"
			}

			log.Debug().Err(err).Str("path", path).Msg("rejected credential")
			fail(failure.Unauthorized(message))

			return
		}

		if principal.Subject == constant.Empty {
			fail(failure.Unauthorized("Invalid token claims"))

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(identity.WithPrincipal(ctx, principal)))
	})
}

// RBAC checks the caller's role against the roles listed for the endpoint.
// It reads the role Auth stored, so it must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil && !internalCaller(ctx) {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		_, permission := m.endpoint(request)
		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		switch {
		case internalCaller(ctx), m.permission.Skip, permission.Open():
		case !permission.Allows(role):
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey marks requests carrying the configured key as internal. Auth and
// RBAC let those through and the system account becomes the actor.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		presented := request.Header.Get(constant.RequestHeaderAPIKey)
		if presented == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		ctx = context.WithValue(ctx, internalCallerKey{}, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextSystem)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
