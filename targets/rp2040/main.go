//go:build rp2040 || rp2350

package main

import (
	"time"

	"machine"

	"multiclock/core"
)

func main() {
	// Clear any watchdog state a previous reset left behind.
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	gpio := newRPGPIODriver()
	adc := newRPADCDriver()
	timer := newRPTimerDriver()
	pwm := newRPPWMDriver(uint32(machine.CPUFrequency()))

	adc.Init()
	adc.ConfigureChannel(potChannel)

	sink := serialSink{}

	clock := core.NewClockDriver(gpio, timer, pwm, core.ClockPins{
		Output:      pinClockOut,
		ActivityLED: pinActivityLED,
	}, uint32(machine.CPUFrequency()))
	reset := core.NewResetSequencer(gpio, core.ResetPins{
		Output:  pinResetOut,
		LowLED:  pinResetLowLED,
		DoneLED: pinResetDoneLED,
	})
	power := core.NewPowerControl(gpio, core.PowerPins{
		Output: pinPowerOut,
		LED:    pinPowerLED,
	})
	mc := core.NewModeController(gpio, adc, clock, reset, power, sink, core.ModePins{
		SingleStepLED: pinSingleStepLED,
		LowFreqLED:    pinLowFreqLED,
		HighFreqLED:   pinHighFreqLED,
		RemoteLED:     pinRemoteLED,
	}, potChannel)
	proc := core.NewRemoteProcessor(mc, clock, reset, sink)

	buttons := newButtonScanner(gpio)
	cons := newConsole(mc, proc)
	display := newStatusDisplay()

	clock.Init()
	reset.Init()
	power.Init()
	buttons.Init()

	start := time.Now()
	mc.Init(0)

	events := make([]core.ButtonEvent, 0, 4)
	var lastDrawMS uint64

	for {
		now := uint64(time.Since(start) / time.Millisecond)

		events = buttons.Scan(now, events[:0])
		for _, ev := range events {
			mc.HandleButton(now, ev)
		}

		cons.Poll(now)
		mc.Tick(now)

		// The OLED redraw is slow relative to the loop; rate-limit it.
		if now-lastDrawMS >= 100 {
			lastDrawMS = now
			display.Update(mc.Snapshot())
		}

		time.Sleep(core.PollIntervalMS * time.Millisecond)
	}
}
