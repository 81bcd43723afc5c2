package password_test

import (
	"strings"
	"testing"

	"linka/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "regular password", plain: "s3cret-pass"},
		{name: "exactly max length", plain: strings.Repeat("a", password.MaxLength)},
		{name: "empty", plain: "", wantErr: password.ErrEmpty},
		{name: "too long", plain: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)
			assert.True(t, strings.HasPrefix(hashed, "$2a$"))
		})
	}
}

func TestHash_SaltsEachCall(t *testing.T) {
	first, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	second, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hashed  string
		wantErr error
	}{
		{name: "match", plain: "s3cret-pass", hashed: hashed},
		{name: "wrong password", plain: "other-pass", hashed: hashed, wantErr: password.ErrMismatch},
		{name: "case sensitive", plain: "S3CRET-PASS", hashed: hashed, wantErr: password.ErrMismatch},
		{name: "empty password", plain: "", hashed: hashed, wantErr: password.ErrMismatch},
		{name: "empty hash", plain: "s3cret-pass", hashed: "", wantErr: password.ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("s3cret-pass", "not-a-bcrypt-hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}

func TestBurn(t *testing.T) {
	assert.NotPanics(t, func() {
		password.Burn("s3cret-pass")
		password.Burn("")
	})
}
