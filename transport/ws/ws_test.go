package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linka/config"
	"linka/infras/identity"
	identityMocks "linka/infras/identity/mocks"
	"linka/infras/otel/mocks"
	"linka/transport/ws"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupServer(t *testing.T, verifier identity.Verifier) (*ws.Hub, *httptest.Server) {
	t.Helper()

	return setupServerWithConfig(t, &config.Config{}, verifier)
}

func setupServerWithConfig(t *testing.T, cfg *config.Config, verifier identity.Verifier) (*ws.Hub, *httptest.Server) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := ws.NewHub()
	go hub.Run(ctx)

	handler := ws.NewHandler(cfg, hub, verifier, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return hub, server
}

func wsURL(server *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
}

func TestConnect_DeliversOnlyToAddressedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := identityMocks.NewMockVerifier(ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "alice-token").Return(identity.Principal{Subject: "alice"}, nil)
	verifier.EXPECT().Verify(gomock.Any(), "bob-token").Return(identity.Principal{Subject: "bob"}, nil)

	hub, server := setupServer(t, verifier)

	alice, _, err := websocket.DefaultDialer.Dial(wsURL(server, "?token=alice-token"), nil)
	require.NoError(t, err)
	defer alice.Close()

	bob, _, err := websocket.DefaultDialer.Dial(wsURL(server, "?token=bob-token"), nil)
	require.NoError(t, err)
	defer bob.Close()

	require.Eventually(t, func() bool { return hub.Online() == 2 }, time.Second, 10*time.Millisecond)

	hub.SendToUsers([]string{"alice"}, []byte(`{"type":"booking.confirmed"}`))

	require.NoError(t, alice.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := alice.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"booking.confirmed"}`, string(msg))

	require.NoError(t, bob.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bob.ReadMessage()
	assert.Error(t, err)
}

func TestConnect_RejectsMissingCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := identityMocks.NewMockVerifier(ctrl)

	_, server := setupServer(t, verifier)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConnect_RejectsInvalidCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := identityMocks.NewMockVerifier(ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "bad").Return(identity.Principal{}, identity.ErrInvalidCredential)

	_, server := setupServer(t, verifier)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, "?token=bad"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConnect_FollowsCORSOrigins(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.AllowedOrigins = []string{"https://app.linka.id"}

	tests := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{name: "allowed origin", origin: "https://app.linka.id", wantStatus: http.StatusSwitchingProtocols},
		{name: "foreign origin", origin: "https://evil.example", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := identityMocks.NewMockVerifier(ctrl)
			verifier.EXPECT().Verify(gomock.Any(), "alice-token").Return(identity.Principal{Subject: "alice"}, nil)

			_, server := setupServerWithConfig(t, cfg, verifier)

			conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server, "?token=alice-token"), http.Header{"Origin": {tt.origin}})
			if conn != nil {
				defer conn.Close()
			}

			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != http.StatusSwitchingProtocols {
				assert.Error(t, err)
			}
		})
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := identityMocks.NewMockVerifier(ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "alice-token").Return(identity.Principal{Subject: "alice"}, nil)

	hub, server := setupServer(t, verifier)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "?token=alice-token"), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Online() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.Online() == 0 }, 2*time.Second, 10*time.Millisecond)
}
