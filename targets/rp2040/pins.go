//go:build rp2040 || rp2350

package main

import "multiclock/core"

// Board pin assignments. Everything except the potentiometer is plain
// GPIO; the pot sits on ADC channel 0 (GP26).
const (
	pinButtonSingleStep = core.GPIOPin(2)
	pinButtonLowFreq    = core.GPIOPin(3)
	pinButtonHighFreq   = core.GPIOPin(4)
	pinButtonReset      = core.GPIOPin(11)
	pinButtonPower      = core.GPIOPin(12)

	pinActivityLED   = core.GPIOPin(5)
	pinSingleStepLED = core.GPIOPin(6)
	pinLowFreqLED    = core.GPIOPin(7)
	pinHighFreqLED   = core.GPIOPin(8)
	pinRemoteLED     = core.GPIOPin(10)
	pinResetLowLED   = core.GPIOPin(13)
	pinResetDoneLED  = core.GPIOPin(14)
	pinPowerLED      = core.GPIOPin(15)

	pinClockOut = core.GPIOPin(9)
	pinResetOut = core.GPIOPin(20)
	pinPowerOut = core.GPIOPin(21) // inverted: low = power enabled

	potChannel = core.ADCChannelID(0) // GP26
)
