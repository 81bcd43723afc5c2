package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest input bcrypt hashes without truncating.
const MaxLength = 72

var (
	ErrEmpty    = errors.New("password cannot be empty")
	ErrTooLong  = fmt.Errorf("password cannot exceed %d bytes", MaxLength)
	ErrMismatch = errors.New("password does not match")
)

var (
	decoyOnce sync.Once
	decoy     []byte
)

func Hash(plain string) (string, error) {
	if err := check(plain); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrMismatch when plain is not the password behind hashed.
func Verify(plain, hashed string) error {
	if plain == "" || hashed == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}

	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}

// Burn spends the same work as Verify against a throwaway hash, so a login
// for an unknown account takes as long as one with a wrong password.
func Burn(plain string) {
	decoyOnce.Do(func() {
		decoy, _ = bcrypt.GenerateFromPassword([]byte("linka-decoy"), bcrypt.DefaultCost)
	})

	_ = bcrypt.CompareHashAndPassword(decoy, []byte(plain))
}

func check(plain string) error {
	switch {
	case plain == "":
		return ErrEmpty
	case len(plain) > MaxLength:
		return ErrTooLong
	default:
		return nil
	}
}
