//go:build rp2040 || rp2350

package main

import (
	"errors"
	"sync"
	"time"

	"multiclock/core"
)

// rpTimerDriver implements core.TimerDriver with one goroutine per
// armed timer. A negative period runs on a fixed cadence (start to
// start); a positive period sleeps after each callback returns.
type rpTimerDriver struct {
	mu     sync.Mutex
	next   core.TimerHandle
	timers map[core.TimerHandle]*repeatingTimer
}

type repeatingTimer struct {
	stop chan struct{}
	done chan struct{}
}

func newRPTimerDriver() *rpTimerDriver {
	return &rpTimerDriver{timers: make(map[core.TimerHandle]*repeatingTimer)}
}

func (d *rpTimerDriver) Arm(periodUS int32, fn func()) (core.TimerHandle, error) {
	if periodUS == 0 {
		return 0, errors.New("zero timer period")
	}

	t := &repeatingTimer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	d.mu.Lock()
	d.next++
	h := d.next
	d.timers[h] = t
	d.mu.Unlock()

	if periodUS < 0 {
		go runTicking(t, time.Duration(-periodUS)*time.Microsecond, fn)
	} else {
		go runSleeping(t, time.Duration(periodUS)*time.Microsecond, fn)
	}
	return h, nil
}

// Cancel stops the timer and waits for its goroutine to exit, so the
// callback cannot fire after Cancel returns.
func (d *rpTimerDriver) Cancel(h core.TimerHandle) error {
	d.mu.Lock()
	t, ok := d.timers[h]
	delete(d.timers, h)
	d.mu.Unlock()
	if !ok {
		return errors.New("unknown timer handle")
	}
	close(t.stop)
	<-t.done
	return nil
}

func runTicking(t *repeatingTimer, period time.Duration, fn func()) {
	defer close(t.done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			fn()
		}
	}
}

func runSleeping(t *repeatingTimer, period time.Duration, fn func()) {
	defer close(t.done)
	for {
		select {
		case <-t.stop:
			return
		case <-time.After(period):
			fn()
		}
	}
}
