// Package main provides an example of picking a display mode from the
// sun events at a location.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/devskill-org/daylight/appearance"
	"github.com/devskill-org/daylight/suntime"
)

func main() {
	const lat, lon = 56.9496, 24.1052 // Riga, Latvia

	now := time.Now()
	rise, err := suntime.Sunrise(lat, lon, now, nil)
	if err != nil {
		log.Fatal(err)
	}
	set, err := suntime.Sunset(lat, lon, now, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Sunrise:", rise.Format(time.Kitchen))
	fmt.Println("Sunset:", set.Format(time.Kitchen))
	fmt.Println("Display mode:", appearance.ModeAt(lat, lon, now))
}
