package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"linka/shared/constant"
)

var location atomic.Pointer[time.Location]

// Init sets the location every listing date is interpreted in. An empty name
// means UTC.
func Init(name string) error {
	if name == "" {
		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		location.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

func In(t time.Time) time.Time {
	return t.In(Location())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location())
}

// ParseDate reads a YYYY-MM-DD calendar date as local midnight.
func ParseDate(value string) (time.Time, error) {
	return Parse(constant.DateOnlyFormat, value)
}

func Format(t time.Time, layout string) string {
	return In(t).Format(layout)
}

func StartOfDay(t time.Time) time.Time {
	local := In(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// Nights counts calendar nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(StartOfDay(checkOut).Sub(StartOfDay(checkIn)).Hours()+12) / 24
}
