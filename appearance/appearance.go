// Package appearance derives a light or dark display mode from the sun
// events at a location: dark between sunset and the next sunrise, light
// during the day. Polar day and polar night resolve to light and dark
// for the whole date.
//
// The package is pure computation. Reading the device location and
// applying the mode to the operating system are up to the caller.
package appearance

import (
	"errors"
	"time"

	"github.com/devskill-org/daylight/suntime"
)

// Mode is a display appearance.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ModeAt returns the display mode for the given coordinates at the
// given instant. The instant's own time zone decides which calendar
// date the sun events are computed for.
func ModeAt(lat, lon float64, at time.Time) Mode {
	rise, err := suntime.Sunrise(lat, lon, at, at.Location())
	if err != nil {
		return polarMode(err)
	}
	set, err := suntime.Sunset(lat, lon, at, at.Location())
	if err != nil {
		return polarMode(err)
	}

	// Anchor both events on at's calendar date. The calculator labels
	// its UTC instant with the requested date, which for longitudes far
	// from Greenwich can land a day off once converted to the local
	// zone; only the wall-clock time of the event matters here.
	rise = onDate(at, rise)
	set = onDate(at, set)

	if at.Before(rise) || at.After(set) {
		return Dark
	}
	return Light
}

// IsDark reports whether ModeAt resolves to Dark.
func IsDark(lat, lon float64, at time.Time) bool {
	return ModeAt(lat, lon, at) == Dark
}

// polarMode maps the two polar conditions to a mode: the sun never
// setting means daylight all day, never rising means night all day.
func polarMode(err error) Mode {
	if errors.Is(err, suntime.ErrNeverSets) {
		return Light
	}
	return Dark
}

// onDate places clock's wall-clock time on day's calendar date, in
// day's zone.
func onDate(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location())
}
