package identity

import (
	"context"
	"errors"
)

type chain struct {
	verifiers []Verifier
}

// NewChain tries each verifier in order and returns the first success.
// An expired credential is reported as such even if later verifiers reject it.
func NewChain(verifiers ...Verifier) Verifier {
	return &chain{verifiers: verifiers}
}

func (c *chain) Verify(ctx context.Context, token string) (Principal, error) {
	lastErr := ErrInvalidCredential

	for _, verifier := range c.verifiers {
		principal, err := verifier.Verify(ctx, token)
		if err == nil {
			return principal, nil
		}

		if errors.Is(err, ErrExpiredCredential) {
			lastErr = err
		}
	}

	return Principal{}, lastErr
}
