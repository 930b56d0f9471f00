package core

// Frequency configuration. The potentiometer curve gives fine control
// over the low end: the first 20% of travel spans 1-100Hz, the rest
// spans 100Hz-100kHz.
const (
	ADCMax = 4095 // 12-bit reading

	MinLowFreq      = 1      // Hz, pot fully counter-clockwise
	MidLowFreq      = 100    // Hz, top of the first pot segment
	MaxLowFreq      = 100000 // Hz, pot fully clockwise
	PotSegmentSplit = 819    // ADCMax * 0.2, boundary reading between segments

	HighFreqHz = 1000000 // fixed output of high-frequency mode

	MinRemoteFreq = 1
	MaxRemoteFreq = 1000000
)

// PWM hardware limits (RP2040 slice: 8.4 fixed-point divider, 16-bit counter).
const (
	SysClockHz     = 125000000
	PWMDividerMin  = 1.0
	PWMDividerMax  = 255.0
	PWMWrapMax     = 65535
	PWMDefaultWrap = 1000 // preferred wrap for duty-cycle resolution
)

// Reset sequencer configuration.
const (
	ResetCycles       = 6   // clock cycles the reset line is held low
	ResetMinVisibleMS = 10  // overall floor so the pulse is observable
	ResetFallbackMS   = 60  // used when the active mode has no defined frequency
	ResetDoneLEDMS    = 250 // completion indicator window
)

// Control loop and input timing.
const (
	PollIntervalMS  = 10
	DebounceDelayMS = 50
	HoldThresholdMS = 3000 // mode-button hold that enters remote control
	RemoteTimeoutMS = 30000
	CmdBufferSize   = 32
)
