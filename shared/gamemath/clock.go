package gamemath

import (
	"fmt"
	"math"
	"time"
)

// FormatClock renders d as MM:SS, truncating partial seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := d.Seconds()
	minutes := int(math.Floor(secs / 60))
	seconds := int(math.Floor(math.Mod(secs, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Seconds converts a float number of seconds to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
