// Package clock provides the time source used by the refresh loop.
//
// Production code uses Real(). Tests use Fake(), whose tickers only fire
// when Advance is called, so loop cadence can be asserted without sleeping.
package clock

import "time"

// Clock abstracts the time operations the refresh loop depends on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTicker returns a Ticker delivering ticks every d. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker
}

// Ticker wraps a periodic timer. The C channel has capacity 1; ticks are
// dropped when the consumer falls behind, matching time.Ticker.
type Ticker struct {
	C <-chan time.Time

	stopFunc func()
}

// Stop turns off the ticker. Stop does not close C.
func (t *Ticker) Stop() { t.stopFunc() }
