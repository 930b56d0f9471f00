package core

// TimerHandle identifies an armed repeating timer.
type TimerHandle int32

// TimerDriver is the abstract repeating-interrupt-timer interface that
// core code uses. The callback runs in interrupt context and must stay
// minimal: no blocking, no allocation.
type TimerDriver interface {
	// Arm schedules fn to run repeatedly. A negative period measures
	// the interval from the start of the previous callback rather than
	// its end, so the output period stays fixed regardless of callback
	// duration.
	Arm(periodUS int32, fn func()) (TimerHandle, error)

	// Cancel stops the timer. Must be synchronous: fn will not fire
	// after Cancel returns.
	Cancel(h TimerHandle) error
}
