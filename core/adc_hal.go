package core

// ADCChannelID identifies a logical ADC channel.
type ADCChannelID uint8

// ADCValue is the "raw" ADC reading as seen by the rest of the firmware.
// Convention here: 12-bit value (0..4095), matching ADCMax.
type ADCValue uint16

// ADCDriver is the abstract analog-input interface that core code uses.
type ADCDriver interface {
	// Init powers up and configures the ADC peripheral.
	Init() error

	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set the pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw performs a one-shot sample from the given channel.
	// Returns a 12-bit value (0..4095).
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
