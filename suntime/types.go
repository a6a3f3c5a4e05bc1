package suntime

import "time"

// Location represents geographic coordinates in decimal degrees.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Sunrise returns the sunrise time at the location. See Sunrise.
func (l Location) Sunrise(date time.Time, zone *time.Location) (time.Time, error) {
	return Sunrise(l.Latitude, l.Longitude, date, zone)
}

// Sunset returns the sunset time at the location. See Sunset.
func (l Location) Sunset(date time.Time, zone *time.Location) (time.Time, error) {
	return Sunset(l.Latitude, l.Longitude, date, zone)
}

// Event identifies which sun event a calculation refers to.
type Event string

const (
	Rise Event = "sunrise"
	Set  Event = "sunset"
)
