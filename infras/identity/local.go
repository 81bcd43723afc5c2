package identity

import (
	"context"
	"errors"

	"linka/infras/jwt"
	"linka/shared/constant"
)

type localVerifier struct {
	jwt jwt.JWT
}

// NewLocalVerifier accepts access tokens issued by the password login flow.
func NewLocalVerifier(jwtService jwt.JWT) Verifier {
	return &localVerifier{jwt: jwtService}
}

func (v *localVerifier) Verify(ctx context.Context, token string) (Principal, error) {
	claims, err := v.jwt.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return Principal{}, ErrExpiredCredential
		}

		return Principal{}, ErrInvalidCredential
	}

	role := claims.Role
	if role == "" {
		role = constant.RoleUser
	}

	return Principal{
		Subject:  claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     role,
		Provider: ProviderJWT,
	}, nil
}
