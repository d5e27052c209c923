package timezone

import (
	"sync/atomic"
	"time"
)

// DefaultTimezone is the zone calendar days are interpreted in unless configured otherwise.
const DefaultTimezone = "Europe/Warsaw"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and finally to time.Local.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.Local
}

// Use sets the zone returned by Current.
func Use(tz string) *time.Location {
	loc := Location(tz)
	current.Store(loc)
	return loc
}

// Current is the zone the panel renders dates in.
func Current() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return Use(DefaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Current())
}
