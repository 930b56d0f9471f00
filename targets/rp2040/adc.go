//go:build rp2040 || rp2350

package main

import (
	"errors"
	"sync"

	"machine"

	"multiclock/core"
)

// rpADCDriver implements core.ADCDriver using TinyGo's machine.ADC.
// TinyGo scales rp2040 conversions to 16 bits; readings are shifted
// back down to the native 12-bit range core expects.
type rpADCDriver struct {
	mu       sync.Mutex
	channels map[core.ADCChannelID]*machine.ADC
}

func newRPADCDriver() *rpADCDriver {
	return &rpADCDriver{channels: make(map[core.ADCChannelID]*machine.ADC)}
}

func (d *rpADCDriver) Init() error {
	machine.InitADC()
	return nil
}

func (d *rpADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.channels[ch]; ok {
		return nil
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errors.New("unsupported ADC channel")
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}
	d.channels[ch] = &adc
	return nil
}

func (d *rpADCDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	d.mu.Lock()
	adc, ok := d.channels[ch]
	d.mu.Unlock()
	if !ok {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		d.mu.Lock()
		adc = d.channels[ch]
		d.mu.Unlock()
	}

	// 16-bit Get() down to the hardware's 12 bits.
	return core.ADCValue(adc.Get() >> 4), nil
}
