// Package timeutil provides utility functions for working with the
// frame clock.
package timeutil

import (
	"math"
	"strconv"
	"time"
)

// Round rounds a time value in seconds to the nearest integer, with halves
// going to the even neighbour.
func Round(t float64) int {
	return int(math.RoundToEven(t))
}

// RoundSeconds expresses d as a whole number of seconds.
func RoundSeconds(d time.Duration) int {
	return Round(d.Seconds())
}

// FormatSeconds renders d in seconds with at most one decimal place and no
// trailing zeros (5s is "5", 1.25s is "1.3").
func FormatSeconds(d time.Duration) string {
	secs := math.Round(d.Seconds()*10) / 10

	return strconv.FormatFloat(secs, 'f', -1, 64)
}

// Since converts a wall clock reading into an offset from origin. Both values
// should carry a monotonic reading.
func Since(origin, t time.Time) time.Duration {
	d := t.Sub(origin)
	if d < 0 {
		return 0
	}

	return d
}
