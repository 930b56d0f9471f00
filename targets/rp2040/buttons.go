//go:build rp2040 || rp2350

package main

import "multiclock/core"

// buttonScanner debounces the five front-panel buttons and turns level
// changes into core.ButtonEvents. Buttons are active low on pull-up
// inputs. A stable press fires an event immediately; a mode button
// still held at HoldThresholdMS fires one additional Hold event.
type buttonScanner struct {
	gpio    core.GPIODriver
	buttons []scannedButton
}

type scannedButton struct {
	pin core.GPIOPin
	id  core.Button

	rawPressed   bool
	lastChangeMS uint64
	pressed      bool
	pressedAtMS  uint64
	holdFired    bool
}

func newButtonScanner(gpio core.GPIODriver) *buttonScanner {
	return &buttonScanner{
		gpio: gpio,
		buttons: []scannedButton{
			{pin: pinButtonSingleStep, id: core.ButtonSingleStep},
			{pin: pinButtonLowFreq, id: core.ButtonLowFrequency},
			{pin: pinButtonHighFreq, id: core.ButtonHighFrequency},
			{pin: pinButtonReset, id: core.ButtonReset},
			{pin: pinButtonPower, id: core.ButtonPower},
		},
	}
}

func (s *buttonScanner) Init() error {
	for i := range s.buttons {
		if err := s.gpio.ConfigureInputPullUp(s.buttons[i].pin); err != nil {
			return err
		}
	}
	return nil
}

// Scan samples every button once and appends the resulting events.
// Called once per control-loop tick.
func (s *buttonScanner) Scan(now uint64, events []core.ButtonEvent) []core.ButtonEvent {
	for i := range s.buttons {
		b := &s.buttons[i]
		raw := !s.gpio.ReadPin(b.pin)

		if raw != b.rawPressed {
			b.rawPressed = raw
			b.lastChangeMS = now
		}
		if now-b.lastChangeMS < core.DebounceDelayMS {
			continue
		}

		if raw && !b.pressed {
			b.pressed = true
			b.pressedAtMS = now
			b.holdFired = false
			events = append(events, core.ButtonEvent{Button: b.id})
		} else if !raw && b.pressed {
			b.pressed = false
		}

		if b.pressed && !b.holdFired && now-b.pressedAtMS >= core.HoldThresholdMS {
			b.holdFired = true
			events = append(events, core.ButtonEvent{Button: b.id, Hold: true})
		}
	}
	return events
}
