package suntime

import (
	"errors"
	"math"
	"time"
)

// Zenith is the sun's zenith angle in degrees that defines rise and
// set. The value accounts for atmospheric refraction and the radius of
// the solar disk.
const Zenith = 90.8

// toRad converts degrees to radians. The almanac formula works in
// degrees throughout, so every trig call converts explicitly.
const toRad = math.Pi / 180

// SunriseUTC returns the sunrise instant in UTC for the given
// coordinates and calendar date. During polar day or polar night the
// error is ErrNeverSets or ErrNeverRises respectively.
func SunriseUTC(lat, lon float64, year int, month time.Month, day int) (time.Time, error) {
	return calcEvent(lat, lon, year, month, day, true, Zenith)
}

// SunsetUTC returns the sunset instant in UTC for the given coordinates
// and calendar date. During polar day or polar night the error is
// ErrNeverSets or ErrNeverRises respectively.
func SunsetUTC(lat, lon float64, year int, month time.Month, day int) (time.Time, error) {
	return calcEvent(lat, lon, year, month, day, false, Zenith)
}

// Sunrise returns the sunrise time for the calendar date of date,
// expressed in zone. A zero date means today and a nil zone means the
// local time zone; both are resolved on this call.
func Sunrise(lat, lon float64, date time.Time, zone *time.Location) (time.Time, error) {
	return localEvent(lat, lon, date, zone, true)
}

// Sunset returns the sunset time for the calendar date of date,
// expressed in zone. A zero date means today and a nil zone means the
// local time zone; both are resolved on this call.
func Sunset(lat, lon float64, date time.Time, zone *time.Location) (time.Time, error) {
	return localEvent(lat, lon, date, zone, false)
}

// DayLength returns the span between sunrise and sunset on the given
// date. Polar day counts as 24 hours of daylight and polar night as
// zero; any other error from the calculator is passed through.
func DayLength(lat, lon float64, year int, month time.Month, day int) (time.Duration, error) {
	rise, err := SunriseUTC(lat, lon, year, month, day)
	if err != nil {
		return polarDayLength(err)
	}
	set, err := SunsetUTC(lat, lon, year, month, day)
	if err != nil {
		return polarDayLength(err)
	}
	d := set.Sub(rise)
	// Near the antimeridian the two UTC instants for the same calendar
	// date can land in reverse order.
	if d < 0 {
		d += 24 * time.Hour
	}
	return d, nil
}

func polarDayLength(err error) (time.Duration, error) {
	switch {
	case errors.Is(err, ErrNeverSets):
		return 24 * time.Hour, nil
	case errors.Is(err, ErrNeverRises):
		return 0, nil
	}
	return 0, err
}

func localEvent(lat, lon float64, date time.Time, zone *time.Location, rise bool) (time.Time, error) {
	if zone == nil {
		zone = time.Local
	}
	if date.IsZero() {
		date = time.Now().In(zone)
	}
	utc, err := calcEvent(lat, lon, date.Year(), date.Month(), date.Day(), rise, Zenith)
	if err != nil {
		return time.Time{}, err
	}
	return utc.In(zone), nil
}

// calcEvent implements the standard almanac sunrise/sunset
// approximation for the given calendar date, returning the instant in
// UTC.
func calcEvent(lat, lon float64, year int, month time.Month, day int, rise bool, zenith float64) (time.Time, error) {
	lon = normalizeLongitude(lon)

	// 1. day of the year
	n := float64(dayOfYear(year, month, day))

	// 2. longitude hour value and approximate event time
	lngHour := lon / 15
	var t float64
	if rise {
		t = n + ((6 - lngHour) / 24)
	} else {
		t = n + ((18 - lngHour) / 24)
	}

	// 3. the Sun's mean anomaly
	m := (0.9856 * t) - 3.289

	// 4. the Sun's true longitude
	l := m + (1.916 * math.Sin(toRad*m)) + (0.020 * math.Sin(toRad*2*m)) + 282.634
	l = forceRange(l, 360)

	// 5. the Sun's right ascension, pushed into the same quadrant as L
	// and converted into hours
	ra := (1 / toRad) * math.Atan(0.91764*math.Tan(toRad*l))
	ra = forceRange(ra, 360)
	lQuadrant := math.Floor(l/90) * 90
	raQuadrant := math.Floor(ra/90) * 90
	ra = (ra + (lQuadrant - raQuadrant)) / 15

	// 6. the Sun's declination
	sinDec := 0.39782 * math.Sin(toRad*l)
	cosDec := math.Cos(math.Asin(sinDec))

	// 7. the Sun's local hour angle
	cosH := (math.Cos(toRad*zenith) - (sinDec * math.Sin(toRad*lat))) / (cosDec * math.Cos(toRad*lat))
	if cosH > 1 {
		return time.Time{}, ErrNeverRises
	}
	if cosH < -1 {
		return time.Time{}, ErrNeverSets
	}

	var h float64
	if rise {
		h = 360 - (1/toRad)*math.Acos(cosH)
	} else {
		h = (1 / toRad) * math.Acos(cosH)
	}
	h /= 15

	// 8. local mean time of the event
	lmt := h + ra - (0.06571 * t) - 6.622

	// 9. back to UTC, in decimal hours
	ut := forceRange(lmt-lngHour, 24)

	// 10. split into hour and minute, carrying a minute that rounds to 60
	hour := int(forceRange(math.Floor(ut), 24))
	minute := int(math.Round((ut - math.Floor(ut)) * 60))
	if minute == 60 {
		hour++
		minute = 0
	}

	// 11. an hour carry past midnight lands on the next day; time.Date
	// normalizes the month and year boundaries
	if hour == 24 {
		hour = 0
		day++
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), nil
}

// dayOfYear computes the ordinal day of the year with the almanac's
// integer formula.
func dayOfYear(year int, month time.Month, day int) int {
	n1 := (275 * int(month)) / 9
	n2 := (int(month) + 9) / 12
	n3 := 1 + (year-4*(year/4)+2)/3
	return n1 - n2*n3 + day - 30
}

// normalizeLongitude reduces lon into [-180, 180] so that lon and
// lon+360 describe the same meridian and yield identical results.
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	switch {
	case lon < -180:
		lon += 360
	case lon > 180:
		lon -= 360
	}
	return lon
}

// forceRange normalizes v into [0, max).
func forceRange(v, max float64) float64 {
	if v < 0 {
		return v + max
	}
	if v >= max {
		return v - max
	}
	return v
}
