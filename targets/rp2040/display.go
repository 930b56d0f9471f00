//go:build rp2040 || rp2350

package main

import (
	"image/color"

	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"multiclock/core"
)

// statusDisplay renders the current status on a 128x64 ssd1306 over
// I2C0. The main loop pushes a fresh snapshot every few ticks; the
// panel redraws only when the snapshot changed.
type statusDisplay struct {
	dev  ssd1306.Device
	last core.Status
	ok   bool
}

func newStatusDisplay() *statusDisplay {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400000})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C})
	dev.ClearDisplay()
	return &statusDisplay{dev: dev, ok: true}
}

func (d *statusDisplay) Update(s core.Status) {
	if !d.ok || s == d.last {
		return
	}
	d.last = s

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	d.dev.ClearBuffer()
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, 0, 10, s.Mode.String(), white)
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, 0, 24, d.frequencyLine(s), white)
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, 0, 38, levelLine(s.Level), white)
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, 0, 52, powerLine(s.PowerOn), white)
	d.dev.Display()
}

func (d *statusDisplay) frequencyLine(s core.Status) string {
	switch s.Strategy {
	case core.StrategyPeriodic, core.StrategyPWM:
		if s.AchievedHz != 0 && s.AchievedHz != s.FreqHz {
			return core.FormatFrequency(s.AchievedHz) + " (clamped)"
		}
		return core.FormatFrequency(s.FreqHz)
	case core.StrategyManual:
		return "manual"
	}
	if s.ResetActive {
		return "reset pulse"
	}
	return "stopped"
}

func levelLine(level bool) string {
	if level {
		return "CLK: HIGH"
	}
	return "CLK: LOW"
}

func powerLine(on bool) string {
	if on {
		return "PWR: ON"
	}
	return "PWR: OFF"
}
