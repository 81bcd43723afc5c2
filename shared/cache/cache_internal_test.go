package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID    string `json:"id"`
	Seats int    `json:"seats"`
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string stored raw", value: "plain", want: "plain"},
		{name: "bytes stored raw", value: []byte(`{"a":1}`), want: `{"a":1}`},
		{name: "struct stored as json", value: entry{ID: "ride-1", Seats: 3}, want: `{"id":"ride-1","seats":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encode(tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := encode(make(chan int))

	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var s string
	require.NoError(t, decode("plain", &s))
	assert.Equal(t, "plain", s)

	var e entry
	require.NoError(t, decode(`{"id":"ride-1","seats":3}`, &e))
	assert.Equal(t, entry{ID: "ride-1", Seats: 3}, e)

	assert.Error(t, decode("not json", &e))
}
