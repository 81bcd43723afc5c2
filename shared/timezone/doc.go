// Package timezone pins the marketplace to a single location. Ride departure
// days, stay check-in and check-out dates and "today" checks are all computed
// in the location set by Init from APP_TIMEZONE; until then UTC is used.
package timezone
