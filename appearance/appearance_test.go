package appearance

import (
	"testing"
	"time"
)

func TestModeAt(t *testing.T) {
	london := struct{ lat, lon float64 }{51.5074, -0.1278}
	svalbard := struct{ lat, lon float64 }{78.0, 15.0}
	tokyo := struct{ lat, lon float64 }{35.6762, 139.6503}
	jst := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name     string
		lat, lon float64
		at       time.Time
		want     Mode
	}{
		// London 2023-01-01: sunrise ~08:06 UTC, sunset ~16:01 UTC.
		{"London before sunrise", london.lat, london.lon, time.Date(2023, time.January, 1, 6, 0, 0, 0, time.UTC), Dark},
		{"London morning", london.lat, london.lon, time.Date(2023, time.January, 1, 8, 30, 0, 0, time.UTC), Light},
		{"London noon", london.lat, london.lon, time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC), Light},
		{"London after sunset", london.lat, london.lon, time.Date(2023, time.January, 1, 16, 30, 0, 0, time.UTC), Dark},
		{"London evening", london.lat, london.lon, time.Date(2023, time.January, 1, 20, 0, 0, 0, time.UTC), Dark},

		// Polar day and polar night resolve without an error.
		{"Svalbard midnight sun", svalbard.lat, svalbard.lon, time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC), Light},
		{"Svalbard polar night", svalbard.lat, svalbard.lon, time.Date(2023, time.December, 21, 12, 0, 0, 0, time.UTC), Dark},

		// Far-eastern longitude: the events must anchor to the local
		// calendar date, not the UTC one.
		{"Tokyo night", tokyo.lat, tokyo.lon, time.Date(2023, time.June, 1, 3, 0, 0, 0, jst), Dark},
		{"Tokyo noon", tokyo.lat, tokyo.lon, time.Date(2023, time.June, 1, 12, 0, 0, 0, jst), Light},
		{"Tokyo late evening", tokyo.lat, tokyo.lon, time.Date(2023, time.June, 1, 23, 0, 0, 0, jst), Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeAt(tt.lat, tt.lon, tt.at); got != tt.want {
				t.Errorf("ModeAt(%v, %v, %v) = %v, want %v", tt.lat, tt.lon, tt.at, got, tt.want)
			}
		})
	}
}

func TestIsDark(t *testing.T) {
	noon := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	if IsDark(51.5074, -0.1278, noon) {
		t.Error("IsDark(London, noon) = true, want false")
	}
	if !IsDark(51.5074, -0.1278, midnight) {
		t.Error("IsDark(London, midnight) = false, want true")
	}
}

func TestModeAtIsStable(t *testing.T) {
	at := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	first := ModeAt(52.5, 13.4, at)
	second := ModeAt(52.5, 13.4, at)
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
