//go:build rp2040 || rp2350

package main

import (
	"machine"

	"multiclock/core"
)

// rpGPIODriver implements core.GPIODriver on TinyGo's machine.Pin.
type rpGPIODriver struct{}

func newRPGPIODriver() *rpGPIODriver { return &rpGPIODriver{} }

func (d *rpGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return nil
}

func (d *rpGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (d *rpGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (d *rpGPIODriver) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}
