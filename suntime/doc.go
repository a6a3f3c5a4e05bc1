// Package suntime computes sunrise and sunset times for a geographic
// coordinate using the standard almanac approximation.
//
// Basic Usage:
//
//	rise, err := suntime.Sunrise(51.5074, -0.1278, time.Time{}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Sunrise:", rise)
//
// A zero date means "today" and a nil zone means the local time zone;
// both defaults are resolved on every call, never captured at process
// start. For explicit dates use SunriseUTC and SunsetUTC, which return
// the instant in UTC:
//
//	rise, err := suntime.SunriseUTC(51.5074, -0.1278, 2023, time.January, 1)
//
// At high latitudes the sun can stay above or below the horizon for a
// whole day. Those dates are reported through ErrNeverSets and
// ErrNeverRises rather than a time:
//
//	_, err := suntime.SunsetUTC(78.0, 15.0, 2023, time.June, 21)
//	if errors.Is(err, suntime.ErrNeverSets) {
//		// midnight sun
//	}
//
// The calculation is a fixed sequence of floating-point operations with
// no shared state, so all functions are safe for concurrent use. The
// approximation is low-precision by design: computed times are accurate
// to within a few minutes at mid latitudes.
package suntime
