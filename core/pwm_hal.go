package core

// PWMParams describes a 50%-duty square wave as divider/wrap/level
// hardware parameters. AchievedHz is the output frequency the
// parameters actually produce, which differs from the requested
// frequency when the request had to be clamped into hardware range.
type PWMParams struct {
	Divider    float32
	Wrap       uint32
	Duty       uint32 // counter compare level, Wrap/2 for 50% duty
	AchievedHz uint32
}

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// ConfigureSquareWave switches the pin to its PWM function, applies
	// the divider/wrap/duty parameters and enables the output.
	ConfigureSquareWave(pin GPIOPin, p PWMParams) error

	// Disable stops PWM on the pin and returns it to a plain digital
	// output driven low. Must be synchronous: no PWM edge may appear on
	// the pin after Disable returns.
	Disable(pin GPIOPin) error
}
