package core

// PowerPins are the pins the power control owns.
type PowerPins struct {
	Output GPIOPin // power rail enable, inverted: low = enabled
	LED    GPIOPin
}

// PowerControl gates the target system's power rail. Defaults to off.
type PowerControl struct {
	gpio    GPIODriver
	pins    PowerPins
	enabled bool
}

func NewPowerControl(gpio GPIODriver, pins PowerPins) *PowerControl {
	return &PowerControl{gpio: gpio, pins: pins}
}

// Init configures the pins with the rail disabled.
func (p *PowerControl) Init() error {
	if err := p.gpio.ConfigureOutput(p.pins.Output); err != nil {
		return err
	}
	if err := p.gpio.ConfigureOutput(p.pins.LED); err != nil {
		return err
	}
	p.apply(false)
	return nil
}

// Set drives the power rail. Mode consequences of the off-to-on
// transition live in the mode controller, which is the only caller.
func (p *PowerControl) Set(enabled bool) {
	p.enabled = enabled
	p.apply(enabled)
}

// Enabled reports whether the rail is on.
func (p *PowerControl) Enabled() bool { return p.enabled }

func (p *PowerControl) apply(enabled bool) {
	p.gpio.SetPin(p.pins.Output, !enabled)
	p.gpio.SetPin(p.pins.LED, enabled)
}
