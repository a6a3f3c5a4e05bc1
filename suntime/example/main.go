// Package main provides an example of computing sunrise and sunset
// times with the suntime package.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/devskill-org/daylight/suntime"
	"github.com/sixdouglas/suncalc"
)

func main() {
	const lat, lon = 51.5074, -0.1278 // London

	now := time.Now()
	rise, err := suntime.Sunrise(lat, lon, now, time.UTC)
	if err != nil {
		log.Fatal(err)
	}
	set, err := suntime.Sunset(lat, lon, now, time.UTC)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Sunrise:", rise)
	fmt.Println("Sunset:", set)

	length, err := suntime.DayLength(lat, lon, now.Year(), now.Month(), now.Day())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Day length:", length)

	// Side by side with the suncalc solar-position model
	times := suncalc.GetTimes(now, lat, lon)
	fmt.Println("suncalc sunrise:", times["sunrise"])
	fmt.Println("suncalc sunset:", times["sunset"])
}
