package permissions_test

import (
	"net/http"
	"testing"

	"linka/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.FindPermissions("/api/auth/login", http.MethodPost).Skip)
	assert.True(t, data.FindPermissions("/api/rides/search", http.MethodGet).Skip)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/api/users", http.MethodGet).Permissions)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/api/hotels", Method: http.MethodGet, Skip: true},
			{Path: "/api/users/{id}/deactivate", Method: http.MethodPost, Permissions: []string{"admin"}},
			{Path: "/", Method: http.MethodGet, Skip: true},
		},
	}

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantPerm []string
	}{
		{name: "exact match", path: "/api/hotels", method: http.MethodGet, wantSkip: true},
		{name: "trailing slash on route pattern", path: "/api/hotels/", method: http.MethodGet, wantSkip: true},
		{name: "method must match", path: "/api/hotels", method: http.MethodPost},
		{name: "parameterised pattern", path: "/api/users/{id}/deactivate", method: http.MethodPost, wantPerm: []string{"admin"}},
		{name: "root is kept", path: "/", method: http.MethodGet, wantSkip: true},
		{name: "unknown route", path: "/api/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, got.Skip)
			assert.Equal(t, tt.wantPerm, got.Permissions)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		want       bool
	}{
		{name: "public route", permission: permissions.Permission{Skip: true}, role: "", want: true},
		{name: "any authenticated caller", permission: permissions.Permission{}, role: "user", want: true},
		{name: "role listed", permission: permissions.Permission{Permissions: []string{"admin"}}, role: "admin", want: true},
		{name: "role not listed", permission: permissions.Permission{Permissions: []string{"admin"}}, role: "user", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.permission.Allows(tt.role))
		})
	}
}
