package core

import "errors"

// Strategy identifies the hardware mechanism currently driving the
// clock output pin. At most one strategy owns the pin at any instant.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyManual
	StrategyPeriodic
	StrategyPWM
)

func (s Strategy) String() string {
	switch s {
	case StrategyManual:
		return "manual"
	case StrategyPeriodic:
		return "periodic"
	case StrategyPWM:
		return "pwm"
	default:
		return "none"
	}
}

var (
	// ErrFrequencyRange is returned when a requested frequency is zero
	// or beyond the caller-supplied maximum.
	ErrFrequencyRange = errors.New("frequency out of range")

	// ErrTimerRange is returned when a frequency is too high for
	// timer-toggle generation (half period below 1us).
	ErrTimerRange = errors.New("frequency too high for timer generation")
)

// ClockPins are the output pins the clock driver owns.
type ClockPins struct {
	Output      GPIOPin
	ActivityLED GPIOPin
}

// ClockDriver owns the clock output pin and the activity indicator.
// It generates the waveform for whichever strategy is active: manual
// toggling, a repeating-timer toggle, or a hardware PWM slice.
//
// Switching strategies always fully tears down the previous one before
// the next engages, so the pin never has two drivers.
type ClockDriver struct {
	gpio       GPIODriver
	timer      TimerDriver
	pwm        PWMDriver
	pins       ClockPins
	sysClockHz uint32

	strategy   Strategy
	level      bool
	freqHz     uint32 // requested generation frequency, 0 for none/manual
	achievedHz uint32 // actual PWM frequency after hardware clamping
	handle     TimerHandle
	armed      bool
}

func NewClockDriver(gpio GPIODriver, timer TimerDriver, pwm PWMDriver, pins ClockPins, sysClockHz uint32) *ClockDriver {
	return &ClockDriver{
		gpio:       gpio,
		timer:      timer,
		pwm:        pwm,
		pins:       pins,
		sysClockHz: sysClockHz,
	}
}

// Init configures the output pins and drives them low.
func (c *ClockDriver) Init() error {
	if err := c.gpio.ConfigureOutput(c.pins.Output); err != nil {
		return err
	}
	if err := c.gpio.ConfigureOutput(c.pins.ActivityLED); err != nil {
		return err
	}
	c.writeOutput(false)
	return nil
}

// Toggle flips the output level by hand and takes manual ownership of
// the pin. Callers must have stopped any running generation first; the
// mode controller enforces that, it is not re-checked here.
func (c *ClockDriver) Toggle() {
	c.writeOutput(!c.level)
	c.strategy = StrategyManual
}

// StartPeriodic arms the repeating timer to toggle the output at
// freqHz. A zero frequency is rejected and leaves the strategy at
// none with no output.
func (c *ClockDriver) StartPeriodic(freqHz uint32) error {
	c.Stop()

	half, err := HalfPeriodMicros(freqHz)
	if err != nil {
		return err
	}
	if half == 0 {
		return ErrTimerRange
	}

	// Negative period: measure from the start of the previous callback
	// so the output frequency does not drift with callback duration.
	h, err := c.timer.Arm(-int32(half), c.flip)
	if err != nil {
		return err
	}

	c.handle = h
	c.armed = true
	c.freqHz = freqHz
	c.achievedHz = freqHz
	c.strategy = StrategyPeriodic
	return nil
}

// StartPWM hands the output pin to the PWM peripheral at freqHz.
// Frequencies outside (0, maxHz] are rejected.
func (c *ClockDriver) StartPWM(freqHz, maxHz uint32) error {
	c.Stop()

	if freqHz == 0 || freqHz > maxHz {
		return ErrFrequencyRange
	}

	p, err := PWMParamsFromFrequency(freqHz, c.sysClockHz)
	if err != nil {
		return err
	}
	if err := c.pwm.ConfigureSquareWave(c.pins.Output, p); err != nil {
		return err
	}

	c.freqHz = freqHz
	c.achievedHz = p.AchievedHz
	c.strategy = StrategyPWM

	// Individual PWM transitions are too fast to see; hold the
	// indicator on while the strategy is active.
	c.gpio.SetPin(c.pins.ActivityLED, true)
	return nil
}

// Stop tears down whichever strategy is active and leaves the pin as a
// plain digital output driven low. Idempotent. The timer or PWM is
// disabled before Stop returns, so no stale callback or edge can fire
// into the next strategy's setup.
func (c *ClockDriver) Stop() {
	switch c.strategy {
	case StrategyPeriodic:
		if c.armed {
			c.timer.Cancel(c.handle)
			c.armed = false
		}
	case StrategyPWM:
		c.pwm.Disable(c.pins.Output)
	}
	c.strategy = StrategyNone
	c.freqHz = 0
	c.achievedHz = 0
	c.writeOutput(false)
}

// Level reports the logical output level. Meaningful for the manual
// and periodic strategies; the PWM peripheral does not expose its
// instantaneous level to software.
func (c *ClockDriver) Level() bool { return c.level }

// Strategy reports which mechanism currently owns the output pin.
func (c *ClockDriver) Strategy() Strategy { return c.strategy }

// Frequency reports the requested generation frequency in Hz, 0 when
// no periodic generation is running.
func (c *ClockDriver) Frequency() uint32 { return c.freqHz }

// AchievedFrequency reports the frequency actually produced, which
// differs from Frequency when PWM parameters had to be clamped.
func (c *ClockDriver) AchievedFrequency() uint32 { return c.achievedHz }

// flip is the repeating-timer callback. Interrupt context: a single
// pin flip plus the flag write, nothing else.
func (c *ClockDriver) flip() {
	c.level = !c.level
	c.gpio.SetPin(c.pins.Output, c.level)
	c.gpio.SetPin(c.pins.ActivityLED, c.level)
}

func (c *ClockDriver) writeOutput(level bool) {
	c.level = level
	c.gpio.SetPin(c.pins.Output, level)
	c.gpio.SetPin(c.pins.ActivityLED, level)
}
