// internal/domain/flashsale/countdown.go
package flashsale

import (
	"math"
	"time"
)

// Countdown is the remaining time to a sale deadline, for display.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Remaining computes the countdown by integer division of the millisecond
// delta, clamped to zero once the deadline has passed. Re-derived every
// render tick from the stored end time; it never mutates anything.
func Remaining(now, end time.Time) Countdown {
	delta := end.Sub(now).Milliseconds()
	if delta < 0 {
		return Countdown{}
	}

	return Countdown{
		Hours:   int(delta / (1000 * 60 * 60)),
		Minutes: int(delta / (1000 * 60) % 60),
		Seconds: int(delta / 1000 % 60),
	}
}

// SoldPercent derives the scarcity ratio as a 0..100 integer. Sold above
// total clamps to 100: the counter is operator-edited and can drift past
// the configured total.
func SoldPercent(sold, total int) int {
	if total <= 0 || sold <= 0 {
		return 0
	}

	pct := int(math.Round(float64(sold) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
