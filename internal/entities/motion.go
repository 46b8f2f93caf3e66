package entities

import (
	"math"
	"time"
)

// SmoothingFactor converts a per-nominal-frame smoothing base into the
// fraction to cover for an elapsed dt: 1 - (1-base)^(dt/target).
func SmoothingFactor(base float64, dt, target time.Duration) float64 {
	if dt <= 0 || target <= 0 {
		return 0
	}
	factor := 1 - math.Pow(1-base, float64(dt)/float64(target))
	return math.Max(0, math.Min(1, factor))
}
