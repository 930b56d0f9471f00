package core

import "testing"

func TestRenderStatusModeLines(t *testing.T) {
	cases := []struct {
		name string
		s    Status
		want string
	}{
		{"single step idle", Status{Mode: ModeSingleStep}, "Status: Waiting for button press"},
		{"single step toggled", Status{Mode: ModeSingleStep, Strategy: StrategyManual}, "Status: Active"},
		{"low frequency", Status{Mode: ModeLowFrequency, FreqHz: 440}, "Frequency: 440 Hz"},
		{"remote stopped", Status{Mode: ModeRemoteControl}, "Clock: stopped"},
		{"remote running", Status{Mode: ModeRemoteControl, FreqHz: 2000, RemoteRunning: true}, "Frequency: 2000 Hz (running)"},
	}
	for _, c := range cases {
		found := false
		for _, l := range RenderStatus(c.s) {
			if l == c.want {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: line %q not rendered, got %v", c.name, c.want, RenderStatus(c.s))
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		freq uint32
		want string
	}{
		{1, "1 Hz"},
		{999, "999 Hz"},
		{1000, "1 kHz"},
		{2500, "2500 Hz"},
		{100000, "100 kHz"},
		{1000000, "1000 kHz"},
	}
	for _, c := range cases {
		if got := FormatFrequency(c.freq); got != c.want {
			t.Errorf("FormatFrequency(%d) = %q, want %q", c.freq, got, c.want)
		}
	}
}

func TestRenderStatusClampLine(t *testing.T) {
	s := Status{Mode: ModeRemoteControl, FreqHz: 1, AchievedHz: 8, RemoteRunning: true}
	lines := RenderStatus(s)
	found := false
	for _, l := range lines {
		if l == "Output: 8 Hz (clamped)" {
			found = true
		}
	}
	if !found {
		t.Errorf("clamp line missing from %v", lines)
	}

	s.AchievedHz = s.FreqHz
	for _, l := range RenderStatus(s) {
		if l == "Output: 1 Hz (clamped)" {
			t.Error("clamp line must not appear when achieved matches requested")
		}
	}
}
