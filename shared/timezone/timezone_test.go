package timezone_test

import (
	"testing"
	"time"

	"linka/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	require.NoError(t, timezone.Init("Asia/Jakarta"))
	assert.Equal(t, "Asia/Jakarta", timezone.Location().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	require.Error(t, timezone.Init("Mars/Olympus"))
	assert.Equal(t, time.UTC, timezone.Location())

	require.NoError(t, timezone.Init(""))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestParseDate(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })
	require.NoError(t, timezone.Init("Asia/Jakarta"))

	day, err := timezone.ParseDate("2026-11-02")
	require.NoError(t, err)

	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, "2026-11-01T17:00:00Z", day.UTC().Format(time.RFC3339))

	_, err = timezone.ParseDate("02/11/2026")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })
	require.NoError(t, timezone.Init("Asia/Jakarta"))

	// 20:00 UTC is already the next day in Jakarta
	start := timezone.StartOfDay(time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-11-02", start.Format(time.DateOnly))
	assert.Equal(t, 0, start.Hour())
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "single night", checkIn: "2026-11-01", checkOut: "2026-11-02", want: 1},
		{name: "week", checkIn: "2026-11-01", checkOut: "2026-11-08", want: 7},
		{name: "same day", checkIn: "2026-11-01", checkOut: "2026-11-01", want: 0},
		{name: "across month end", checkIn: "2026-10-30", checkOut: "2026-11-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, err := timezone.ParseDate(tt.checkIn)
			require.NoError(t, err)

			checkOut, err := timezone.ParseDate(tt.checkOut)
			require.NoError(t, err)

			assert.Equal(t, tt.want, timezone.Nights(checkIn, checkOut))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })
	require.NoError(t, timezone.Init("Asia/Jakarta"))

	formatted := timezone.Format(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), time.RFC3339)

	assert.Equal(t, "2026-11-01T07:00:00+07:00", formatted)
}
