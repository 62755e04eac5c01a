// Package format renders durations the same way in every front end.
package format

import (
	"fmt"
	"math"
	"time"
)

// Clock renders seconds as H:MM:SS. Hours are not wrapped at 24 and negative
// input renders as 0:00:00.
func Clock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Duration is Clock for a time.Duration.
func Duration(d time.Duration) string {
	return Clock(d.Seconds())
}

// Hours renders fractional hours with two decimals.
func Hours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}
