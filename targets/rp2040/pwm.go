//go:build rp2040 || rp2350

package main

import (
	"errors"

	"machine"

	"multiclock/core"
)

// pwmSlice abstracts over TinyGo's unexported *pwmGroup type.
type pwmSlice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// rpPWMDriver implements core.PWMDriver on the RP2040's hardware PWM
// slices. GPIO pin N maps to slice (N>>1)&7, channel N&1.
type rpPWMDriver struct {
	sysClockHz uint32
	channels   map[core.GPIOPin]uint8
}

func newRPPWMDriver(sysClockHz uint32) *rpPWMDriver {
	return &rpPWMDriver{
		sysClockHz: sysClockHz,
		channels:   make(map[core.GPIOPin]uint8),
	}
}

func (d *rpPWMDriver) ConfigureSquareWave(pin core.GPIOPin, p core.PWMParams) error {
	slice := pwmSliceFor(pin)
	if slice == nil {
		return errors.New("pin has no PWM slice")
	}

	// The divider/wrap pair encodes the counter period; TinyGo's
	// Configure picks its own divider and top from a period in
	// nanoseconds, so hand it the exact period the parameters describe.
	periodNS := uint64(float64(p.Divider) * float64(p.Wrap) * 1e9 / float64(d.sysClockHz))
	if err := slice.Configure(machine.PWMConfig{Period: periodNS}); err != nil {
		return err
	}

	channel, err := slice.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}
	slice.Set(channel, slice.Top()/2)
	slice.Enable(true)

	d.channels[pin] = channel
	return nil
}

func (d *rpPWMDriver) Disable(pin core.GPIOPin) error {
	if slice := pwmSliceFor(pin); slice != nil {
		if channel, ok := d.channels[pin]; ok {
			slice.Set(channel, 0)
		}
		slice.Enable(false)
	}
	delete(d.channels, pin)

	// Hand the pin back to SIO, driven low.
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return nil
}

func pwmSliceFor(pin core.GPIOPin) pwmSlice {
	switch (uint32(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	}
	return nil
}
