package reconcile

import (
	"math/rand/v2"
	"time"
)

const defaultJitterPercent = 0.15

// jitter случайно размазывает value в пределах [value*(1-percent), value*(1+percent)].
// Отрицательный percent заменяется на 15%.
func jitter(value time.Duration, percent float64) time.Duration {
	if percent < 0 {
		percent = defaultJitterPercent
	}
	factor := 1 - percent + rand.Float64()*2*percent // nolint:gosec
	return time.Duration(float64(value) * factor)
}
