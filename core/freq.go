package core

import "errors"

// ErrZeroFrequency is returned for operations that cannot produce a
// waveform at 0Hz.
var ErrZeroFrequency = errors.New("frequency must be non-zero")

// FrequencyFromReading maps a 12-bit potentiometer reading to a target
// frequency in Hz. The map is piecewise linear: readings 0..819 (the
// first 20% of travel) cover 1-100Hz, readings 820..4095 cover
// 100Hz-100kHz. Integer math keeps both branch formulas equal to
// exactly 100Hz at the segment boundary; floating-point truncation
// there would open a visible gap in the sweep.
func FrequencyFromReading(reading uint16) uint32 {
	if reading > ADCMax {
		reading = ADCMax
	}
	r := uint32(reading)

	if r <= PotSegmentSplit {
		// 1Hz..100Hz over 0..819
		return MinLowFreq + r*(MidLowFreq-MinLowFreq)/PotSegmentSplit
	}

	// 100Hz..100kHz over 820..4095
	scaled := r - PotSegmentSplit // 1..3276
	span := uint32(ADCMax - PotSegmentSplit)
	return MidLowFreq + scaled*(MaxLowFreq-MidLowFreq)/span
}

// HalfPeriodMicros returns the half period of a square wave at freqHz,
// in microseconds. The repeating timer toggles the output once per
// firing, so two firings make one full cycle.
func HalfPeriodMicros(freqHz uint32) (uint32, error) {
	if freqHz == 0 {
		return 0, ErrZeroFrequency
	}
	return 500000 / freqHz, nil
}

// PWMParamsFromFrequency chooses divider/wrap/duty parameters so that
// sysClockHz / (divider * (wrap+1)) approximates freqHz with a 50%
// duty cycle.
//
// The branch order matters: start from a moderate wrap for duty
// resolution, shrink wrap when the required divider overflows the
// hardware maximum, grow wrap when it underflows the minimum. Requests
// outside the representable range are clamped, never dropped; callers
// can compare AchievedHz against the request to report clamping.
func PWMParamsFromFrequency(freqHz, sysClockHz uint32) (PWMParams, error) {
	if freqHz == 0 {
		return PWMParams{}, ErrZeroFrequency
	}

	sys := float32(sysClockHz)
	target := float32(freqHz)

	wrap := uint32(PWMDefaultWrap)
	divider := sys / (target * float32(wrap+1))

	if divider > PWMDividerMax {
		// Signal too slow for the preferred wrap: stretch the counter.
		w := sys/(target*PWMDividerMax) - 1
		if w > PWMWrapMax {
			w = PWMWrapMax
		}
		if w < 1 {
			w = 1
		}
		wrap = uint32(w)
		divider = sys / (target * float32(wrap+1))
		if divider > PWMDividerMax {
			divider = PWMDividerMax
		}
	}

	if divider < PWMDividerMin {
		// Signal too fast for the preferred wrap: shorten the counter
		// and run the slice at full speed.
		w := sys/target - 1
		if w > PWMWrapMax {
			w = PWMWrapMax
		}
		if w < 1 {
			w = 1
		}
		wrap = uint32(w)
		divider = PWMDividerMin
	}

	// A 50% duty level must be representable as a nonzero integer.
	if wrap < 2 {
		wrap = 2
	}

	p := PWMParams{
		Divider:    divider,
		Wrap:       wrap,
		Duty:       wrap / 2,
		AchievedHz: uint32(sys / (divider * float32(wrap+1))),
	}
	return p, nil
}
