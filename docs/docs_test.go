package docs_test

import (
	"encoding/json"
	"testing"

	"linka/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_ListsRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths               map[string]map[string]json.RawMessage `json:"paths"`
		Definitions         map[string]json.RawMessage            `json:"definitions"`
		SecurityDefinitions map[string]json.RawMessage            `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Link-A API", doc.Info.Title)
	assert.Contains(t, doc.SecurityDefinitions, "BearerAuth")

	tests := []struct {
		path   string
		method string
	}{
		{"/api/health", "get"},
		{"/api/auth/login", "post"},
		{"/api/bookings/create", "post"},
		{"/api/bookings/{id}/complete", "post"},
		{"/api/rides/search", "get"},
		{"/api/hotels/{id}", "patch"},
		{"/api/users/{id}/verification", "patch"},
		{"/api/ws", "get"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			require.Contains(t, doc.Paths, tt.path)
			assert.Contains(t, doc.Paths[tt.path], tt.method)
		})
	}

	assert.Contains(t, doc.Definitions, "dto.CreateBookingRequest")
	assert.Contains(t, doc.Definitions, "response.Error")
}
