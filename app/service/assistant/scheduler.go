package assistant

import (
	"math/rand/v2"
	"time"
)

// Scheduler defers the assistant reply. The delay exists only for perceived
// latency; it is never a correctness mechanism, which is why tests swap in an
// immediate implementation.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

func replyDelay(base, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return base
	}

	return base + rand.N(jitter)
}
