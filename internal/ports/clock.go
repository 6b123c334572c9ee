package ports

import "time"

// Clock supplies the reference time for display decisions (credential expiry
// labels, bot-list ages). Injected so tests can pin it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

var _ Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
