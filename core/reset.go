package core

// ResetPins are the pins the reset sequencer owns.
type ResetPins struct {
	Output  GPIOPin // reset line, active low
	LowLED  GPIOPin // on while the reset line is asserted
	DoneLED GPIOPin // on for ResetDoneLEDMS after the pulse completes
}

// ResetSequencer holds the reset line low until ResetCycles clock
// cycles have elapsed, then releases it and times a completion
// indicator window.
//
// Cycle counting differs by the mode active at trigger time. Single
// step has no defined frequency, so cycles are counted by observing
// low-to-high edges of the output level. Every other mode has a
// generation frequency the sequencer converts directly into elapsed
// time; polling actual edges there would be wasteful and impossible
// under PWM, which does not expose its instantaneous level.
type ResetSequencer struct {
	gpio GPIODriver
	pins ResetPins

	active        bool
	cycles        uint32
	startMS       uint64
	modeAtTrigger Mode
	edgeTracking  bool
	lastLevel     bool
	asserted      bool
	doneAtMS      uint64 // completion timestamp, 0 = no indicator window
}

func NewResetSequencer(gpio GPIODriver, pins ResetPins) *ResetSequencer {
	return &ResetSequencer{gpio: gpio, pins: pins}
}

// Init configures the pins. The reset line idles high (de-asserted).
func (r *ResetSequencer) Init() error {
	if err := r.gpio.ConfigureOutput(r.pins.Output); err != nil {
		return err
	}
	if err := r.gpio.ConfigureOutput(r.pins.LowLED); err != nil {
		return err
	}
	if err := r.gpio.ConfigureOutput(r.pins.DoneLED); err != nil {
		return err
	}
	r.assert(false)
	r.gpio.SetPin(r.pins.DoneLED, false)
	return nil
}

// Trigger arms the sequencer and drives the reset line low. Returns
// false without side effects if a sequence is already running.
func (r *ResetSequencer) Trigger(now uint64, mode Mode, clockLevel bool) bool {
	if r.active {
		return false
	}
	r.active = true
	r.cycles = 0
	r.startMS = now
	r.modeAtTrigger = mode
	r.edgeTracking = mode == ModeSingleStep
	r.lastLevel = clockLevel
	r.assert(true)
	return true
}

// Poll advances the sequence by one control-loop tick. clockLevel and
// genFreqHz are a snapshot taken together by the caller in the same
// tick, so a mode transition can never be observed half-applied here.
// genFreqHz is the active mode's generation frequency, 0 when the mode
// has none defined.
func (r *ResetSequencer) Poll(now uint64, clockLevel bool, genFreqHz uint32) {
	// The completion indicator outlives the sequence itself.
	if r.doneAtMS != 0 && now-r.doneAtMS >= ResetDoneLEDMS {
		r.gpio.SetPin(r.pins.DoneLED, false)
		r.doneAtMS = 0
	}

	if !r.active {
		return
	}

	if r.edgeTracking {
		if !r.lastLevel && clockLevel {
			r.cycles++
			if r.cycles >= ResetCycles {
				r.complete(now)
			}
		}
		r.lastLevel = clockLevel
		return
	}

	if now-r.startMS >= requiredPulseMS(genFreqHz) {
		r.complete(now)
	}
}

// Active reports whether a reset pulse is in progress.
func (r *ResetSequencer) Active() bool { return r.active }

// Asserted reports whether the reset line is currently driven low.
func (r *ResetSequencer) Asserted() bool { return r.asserted }

// CyclesCounted reports edge-tracked cycles observed so far.
func (r *ResetSequencer) CyclesCounted() uint32 { return r.cycles }

func (r *ResetSequencer) complete(now uint64) {
	r.assert(false)
	r.active = false
	r.doneAtMS = now
	r.gpio.SetPin(r.pins.DoneLED, true)
}

func (r *ResetSequencer) assert(asserted bool) {
	r.asserted = asserted
	r.gpio.SetPin(r.pins.Output, !asserted)
	r.gpio.SetPin(r.pins.LowLED, asserted)
}

// requiredPulseMS converts a generation frequency into the time the
// reset line must stay low to span ResetCycles cycles. A 1ms floor
// guards the division truncating to zero at very high frequency, and
// the 10ms visibility floor is applied after the frequency-specific
// computation. With no defined frequency (mode transition mid-sequence,
// remote session with nothing set) a fixed 60ms stands in, roughly six
// cycles at 100Hz.
func requiredPulseMS(genFreqHz uint32) uint64 {
	var required uint64
	if genFreqHz > 0 {
		required = uint64(ResetCycles*1000) / uint64(genFreqHz)
		if required == 0 {
			required = 1
		}
	} else {
		required = ResetFallbackMS
	}
	if required < ResetMinVisibleMS {
		required = ResetMinVisibleMS
	}
	return required
}
