package core

// Mode is one of the four mutually-exclusive clock-generation
// behaviors. Exactly one is active at any time.
type Mode uint8

const (
	ModeSingleStep Mode = iota
	ModeLowFrequency
	ModeHighFrequency
	ModeRemoteControl
)

func (m Mode) String() string {
	switch m {
	case ModeSingleStep:
		return "Single Step"
	case ModeLowFrequency:
		return "Low Frequency"
	case ModeHighFrequency:
		return "High Frequency"
	case ModeRemoteControl:
		return "Remote Control"
	default:
		return "Unknown"
	}
}

// Button identifies a physical front-panel button.
type Button uint8

const (
	ButtonSingleStep Button = iota
	ButtonLowFrequency
	ButtonHighFrequency
	ButtonReset
	ButtonPower
)

// ButtonEvent is a press already filtered for contact bounce by the
// input layer. Hold reports the single hold-exceeded event fired when
// a mode button has been held for HoldThresholdMS.
type ButtonEvent struct {
	Button Button
	Hold   bool
}

func isModeButton(b Button) bool {
	return b == ButtonSingleStep || b == ButtonLowFrequency || b == ButtonHighFrequency
}

// ModePins are the indicator pins the mode controller owns.
type ModePins struct {
	SingleStepLED GPIOPin
	LowFreqLED    GPIOPin
	HighFreqLED   GPIOPin
	RemoteLED     GPIOPin
}

// ModeController owns the current and previous mode and executes the
// mode-transition protocol. It is the root of the control engine: all
// input events land here, and it is the only component that starts or
// stops clock generation.
type ModeController struct {
	gpio  GPIODriver
	adc   ADCDriver
	clock *ClockDriver
	reset *ResetSequencer
	power *PowerControl
	sink  StatusSink
	pins  ModePins

	potChannel ADCChannelID

	current  Mode
	previous Mode
	session  RemoteSession

	inTransition bool
}

func NewModeController(gpio GPIODriver, adc ADCDriver, clock *ClockDriver, reset *ResetSequencer, power *PowerControl, sink StatusSink, pins ModePins, potChannel ADCChannelID) *ModeController {
	return &ModeController{
		gpio:       gpio,
		adc:        adc,
		clock:      clock,
		reset:      reset,
		power:      power,
		sink:       sink,
		pins:       pins,
		potChannel: potChannel,
	}
}

// Init configures the indicator pins and enters single-step mode.
func (c *ModeController) Init(now uint64) error {
	for _, pin := range []GPIOPin{c.pins.SingleStepLED, c.pins.LowFreqLED, c.pins.HighFreqLED, c.pins.RemoteLED} {
		if err := c.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
	}
	c.SetMode(now, ModeSingleStep)
	return nil
}

// SetMode executes the transition protocol: stop all generation, tear
// down the remote session when leaving it, record the previous mode
// when entering it, then run the new mode's setup and refresh the
// indicators. The whole sequence is a non-reentrant critical section;
// a re-entrant call is dropped and the system stays in the prior mode.
func (c *ModeController) SetMode(now uint64, mode Mode) {
	st := disableInterrupts()
	if c.inTransition {
		restoreInterrupts(st)
		return
	}
	c.inTransition = true
	restoreInterrupts(st)
	defer func() { c.inTransition = false }()

	c.clock.Stop()

	if c.current == ModeRemoteControl && mode != ModeRemoteControl {
		c.session.Clear()
	}
	if mode == ModeRemoteControl {
		c.previous = c.current
	}
	c.current = mode

	switch mode {
	case ModeSingleStep:
		// Output stays low until the operator toggles it.
	case ModeLowFrequency:
		c.updateLowFrequency(false)
	case ModeHighFrequency:
		c.clock.StartPWM(HighFreqHz, MaxRemoteFreq)
	case ModeRemoteControl:
		c.session.Reset(now)
		c.emitMenu()
	}

	c.updateModeLEDs()
	c.EmitStatus()
}

// HandleButton applies the debounced-press protocol. A press of the
// single-step button while already in single step toggles the clock;
// any other mode button switches modes; any mode button exits remote
// control back to the previous mode; a hold enters remote control.
func (c *ModeController) HandleButton(now uint64, ev ButtonEvent) {
	if ev.Hold {
		if isModeButton(ev.Button) && c.current != ModeRemoteControl {
			c.SetMode(now, ModeRemoteControl)
		}
		return
	}

	if c.current == ModeRemoteControl && isModeButton(ev.Button) {
		c.SetMode(now, c.previous)
		return
	}

	switch ev.Button {
	case ButtonSingleStep:
		if c.current == ModeSingleStep {
			c.clock.Toggle()
		} else {
			c.SetMode(now, ModeSingleStep)
		}
	case ButtonLowFrequency:
		c.SetMode(now, ModeLowFrequency)
	case ButtonHighFrequency:
		c.SetMode(now, ModeHighFrequency)
	case ButtonReset:
		if c.reset.Trigger(now, c.current, c.clock.Level()) {
			c.sink.WriteLine("Reset pulse initiated")
		}
	case ButtonPower:
		c.SetPower(now, !c.power.Enabled())
	}
}

// SetPower drives the power rail. An off-to-on transition always
// forces single-step mode, whatever was active before.
func (c *ModeController) SetPower(now uint64, enabled bool) {
	was := c.power.Enabled()
	c.power.Set(enabled)
	if enabled {
		c.sink.WriteLine("Power ON")
	} else {
		c.sink.WriteLine("Power OFF")
	}
	if !was && enabled {
		c.SetMode(now, ModeSingleStep)
	}
}

// Tick runs once per control-loop pass: track the potentiometer in
// low-frequency mode, expire the remote session, and advance the reset
// sequencer with a consistent (level, frequency) snapshot.
func (c *ModeController) Tick(now uint64) {
	if c.current == ModeLowFrequency {
		c.updateLowFrequency(true)
	}
	if c.current == ModeRemoteControl && c.session.Expired(now) {
		c.sink.WriteLine("Remote session timed out - returning to " + c.previous.String() + " mode")
		c.SetMode(now, c.previous)
	}
	c.reset.Poll(now, c.clock.Level(), c.generationFrequency())
}

// generationFrequency is the reset sequencer's frequency snapshot for
// this tick: the active mode's defined generation frequency, or 0 when
// the mode has none (single step, or a remote session with nothing
// set).
func (c *ModeController) generationFrequency() uint32 {
	switch c.current {
	case ModeLowFrequency:
		return c.clock.Frequency()
	case ModeHighFrequency:
		return HighFreqHz
	case ModeRemoteControl:
		return c.session.SetFrequency()
	default:
		return 0
	}
}

// Mode reports the current mode.
func (c *ModeController) Mode() Mode { return c.current }

// PreviousMode reports the mode that was active before remote control
// was entered.
func (c *ModeController) PreviousMode() Mode { return c.previous }

// Session exposes the remote session state. Valid only while the
// current mode is remote control.
func (c *ModeController) Session() *RemoteSession { return &c.session }

// TouchRemote refreshes the remote inactivity deadline. The serial
// layer calls this for every received byte.
func (c *ModeController) TouchRemote(now uint64) {
	if c.current == ModeRemoteControl {
		c.session.Touch(now)
	}
}

// Snapshot assembles the externally observable state for the status
// sink.
func (c *ModeController) Snapshot() Status {
	return Status{
		Mode:          c.current,
		Strategy:      c.clock.Strategy(),
		FreqHz:        c.clock.Frequency(),
		AchievedHz:    c.clock.AchievedFrequency(),
		Level:         c.clock.Level(),
		PowerOn:       c.power.Enabled(),
		ResetActive:   c.reset.Active(),
		RemoteRunning: c.session.Running(),
	}
}

// EmitStatus renders the status block to the sink. Called after every
// mode transition and every processed remote command.
func (c *ModeController) EmitStatus() {
	for _, line := range RenderStatus(c.Snapshot()) {
		c.sink.WriteLine(line)
	}
}

func (c *ModeController) emitMenu() {
	for _, line := range RenderMenu() {
		c.sink.WriteLine(line)
	}
}

// updateLowFrequency samples the potentiometer and re-arms the
// periodic toggle when the mapped frequency changed. Re-arming on
// every tick would glitch the output for nothing.
func (c *ModeController) updateLowFrequency(emit bool) {
	reading, err := c.adc.ReadRaw(c.potChannel)
	if err != nil {
		return
	}
	freq := FrequencyFromReading(uint16(reading))
	if c.clock.Strategy() == StrategyPeriodic && c.clock.Frequency() == freq {
		return
	}
	if c.clock.StartPeriodic(freq) == nil && emit {
		c.EmitStatus()
	}
}

func (c *ModeController) updateModeLEDs() {
	c.gpio.SetPin(c.pins.SingleStepLED, c.current == ModeSingleStep)
	c.gpio.SetPin(c.pins.LowFreqLED, c.current == ModeLowFrequency)
	c.gpio.SetPin(c.pins.HighFreqLED, c.current == ModeHighFrequency)
	c.gpio.SetPin(c.pins.RemoteLED, c.current == ModeRemoteControl)
}
