package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Start launches automatic dispatch of queued events every dispatch interval.
// A negative interval pauses automatic dispatch until the interval is changed.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("already started")
	}

	t.running = true
	t.done = make(chan struct{})
	t.stopped = make(chan struct{})

	go t.run(context.WithoutCancel(ctx))

	return nil
}

// Stop ends automatic dispatch and makes a final dispatch of anything still
// queued.
func (t *Tracker) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return nil
	}

	t.running = false
	close(t.done)
	t.mu.Unlock()

	<-t.stopped

	if !t.isInitialized() {
		return nil
	}

	return t.Dispatch(ctx)
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.stopped)

	logger := logging.GetFromContext(ctx)

	for {
		var tick <-chan time.Time
		var timer *time.Timer

		if interval := t.currentDispatchInterval(); interval > 0 {
			timer = time.NewTimer(interval)
			tick = timer.C
		}

		select {
		case <-t.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-t.reconfigured:
			if timer != nil {
				timer.Stop()
			}
		case <-tick:
			if !t.isInitialized() {
				continue
			}

			if err := t.Dispatch(ctx); err != nil {
				logger.Error("automatic dispatch failed", "err", err.Error())
			}
		}
	}
}

func (t *Tracker) currentDispatchInterval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dispatchInterval
}

func (t *Tracker) isInitialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.initialized
}
