package ws

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header", want: true},
		{name: "no list accepts same origin", origin: "https://api.linka.id", want: true},
		{name: "no list rejects other origins", origin: "https://evil.example", want: false},
		{name: "listed origin", allowed: []string{"https://app.linka.id"}, origin: "https://app.linka.id", want: true},
		{name: "unlisted origin", allowed: []string{"https://app.linka.id"}, origin: "https://evil.example", want: false},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://evil.example", want: true},
		{name: "malformed origin", origin: "://", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "https://api.linka.id/api/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, checkOrigin(tt.allowed)(req))
		})
	}
}
