package identity

//go:generate go run go.uber.org/mock/mockgen -source=./identity.go -destination=./mocks/identity_mock.go -package=mocks

import (
	"context"
	"errors"

	"linka/config"
	"linka/infras/jwt"
	"linka/infras/otel"
	"linka/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	ProviderFirebase = "firebase"
	ProviderJWT      = "jwt"
	ProviderChain    = "chain"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrExpiredCredential = errors.New("credential has expired")
)

// Principal is the authenticated caller. Subject is the users.id of the caller.
type Principal struct {
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Provider string `json:"provider"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// New builds the verifier selected by IDENTITY_PROVIDER. The chain provider
// falls back to local tokens only when Firebase is not configured.
func New(cfg *config.Config, jwtService jwt.JWT, otl otel.Otel) Verifier {
	local := NewLocalVerifier(jwtService)

	switch cfg.Identity.Provider {
	case ProviderJWT:
		return local
	case ProviderFirebase:
		firebase, err := NewFirebaseVerifier(context.Background(), cfg, otl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Firebase verifier")
		}

		return firebase
	default:
		firebase, err := NewFirebaseVerifier(context.Background(), cfg, otl)
		if err != nil {
			log.Warn().Err(err).Msg("Firebase verifier unavailable, accepting local tokens only")

			return local
		}

		return NewChain(firebase, local)
	}
}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyPrincipal, principal)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, principal.Subject)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, principal.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, principal.Role)

	return ctx
}

func FromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(constant.ContextKeyPrincipal).(Principal)

	return principal, ok && principal.Subject != ""
}
