package identity

import (
	"context"
	"errors"
	"fmt"

	"linka/config"
	"linka/infras/otel"
	"linka/shared/constant"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	claimEmail = "email"
	claimName  = "name"
	claimRole  = "role"
)

// IDTokenVerifier is the part of the Firebase auth client used here.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client IDTokenVerifier
	otel   otel.Otel
}

func NewFirebaseVerifier(ctx context.Context, cfg *config.Config, otl otel.Otel) (Verifier, error) {
	settings := cfg.Identity.Firebase
	if settings.ProjectID == "" && settings.CredentialsFile == "" {
		return nil, errors.New("firebase is not configured")
	}

	opts := []option.ClientOption{}
	if settings.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(settings.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: settings.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	log.Info().Str("projectID", settings.ProjectID).Msg("Firebase identity verifier initialized")

	return NewFirebaseVerifierWithClient(client, otl), nil
}

func NewFirebaseVerifierWithClient(client IDTokenVerifier, otl otel.Otel) Verifier {
	return &firebaseVerifier{client: client, otel: otl}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (res Principal, err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelIdentityScopeName, constant.OtelIdentityScopeName+".firebase.Verify")
	defer scope.End()

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		scope.TraceError(err)

		if auth.IsIDTokenExpired(err) {
			return res, ErrExpiredCredential
		}

		return res, ErrInvalidCredential
	}

	res = Principal{
		Subject:  decoded.UID,
		Email:    stringClaim(decoded.Claims, claimEmail),
		Name:     stringClaim(decoded.Claims, claimName),
		Role:     stringClaim(decoded.Claims, claimRole),
		Provider: ProviderFirebase,
	}

	if res.Role == "" {
		res.Role = constant.RoleUser
	}

	scope.SetAttribute("identity.provider", decoded.Firebase.SignInProvider)

	return res, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
