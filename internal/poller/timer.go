package poller

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

type realTimer struct {
	timer *time.Timer
}

func newRealTimer() backoff.Timer {
	return &realTimer{}
}

func (t *realTimer) Start(duration time.Duration) {
	if t.timer == nil {
		t.timer = time.NewTimer(duration)
		return
	}
	t.timer.Reset(duration)
}

func (t *realTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *realTimer) C() <-chan time.Time {
	return t.timer.C
}
