package retrieve

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze the queryTime
// annotation via SetClock. Production code uses the real clock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
