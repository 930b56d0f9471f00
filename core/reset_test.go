package core

import "testing"

func newTestReset() (*ResetSequencer, *fakeGPIO) {
	gpio := newFakeGPIO()
	r := NewResetSequencer(gpio, ResetPins{Output: tpResetOut, LowLED: tpResetLow, DoneLED: tpResetDone})
	r.Init()
	return r, gpio
}

func TestResetIdlesDeasserted(t *testing.T) {
	r, gpio := newTestReset()
	if r.Active() || r.Asserted() {
		t.Fatal("sequencer should boot idle")
	}
	if !gpio.ReadPin(tpResetOut) {
		t.Error("reset line should idle high")
	}
}

func TestResetEdgeCountingCompletesAtSixCycles(t *testing.T) {
	r, gpio := newTestReset()

	if !r.Trigger(0, ModeSingleStep, false) {
		t.Fatal("trigger failed")
	}
	if !r.Asserted() || gpio.ReadPin(tpResetOut) {
		t.Fatal("trigger must drive the reset line low")
	}
	if !gpio.ReadPin(tpResetLow) {
		t.Error("asserted indicator should be on")
	}

	// Five full cycles are not enough.
	for i := 0; i < 5; i++ {
		r.Poll(uint64(i*20), true, 0)  // rising edge observed
		r.Poll(uint64(i*20+10), false, 0)
	}
	if !r.Active() {
		t.Fatalf("still expected active after 5 cycles, counted %d", r.CyclesCounted())
	}

	// The sixth rising edge completes the pulse.
	r.Poll(200, true, 0)
	if r.Active() || r.Asserted() {
		t.Error("sequence should complete on the sixth rising edge")
	}
	if !gpio.ReadPin(tpResetOut) {
		t.Error("reset line should be released high")
	}
	if !gpio.ReadPin(tpResetDone) {
		t.Error("completion indicator should be on")
	}
}

func TestResetEdgeCountingIgnoresLevelWithoutEdge(t *testing.T) {
	r, _ := newTestReset()
	r.Trigger(0, ModeSingleStep, true) // clock already high at trigger

	// Holding high produces no rising edges.
	for i := 0; i < 10; i++ {
		r.Poll(uint64(i*10), true, 0)
	}
	if r.CyclesCounted() != 0 {
		t.Errorf("expected 0 cycles without edges, got %d", r.CyclesCounted())
	}
}

func TestResetTimedHighFrequencyClampsToVisibilityFloor(t *testing.T) {
	r, _ := newTestReset()
	r.Trigger(0, ModeHighFrequency, false)

	// 6 cycles at 1MHz computes to 0ms, clamped to 1ms, then to the
	// overall 10ms visibility floor.
	r.Poll(9, false, 1000000)
	if !r.Active() {
		t.Fatal("should still be active at 9ms")
	}
	r.Poll(10, false, 1000000)
	if r.Active() {
		t.Error("should complete at the 10ms floor")
	}
}

func TestResetTimedLowFrequency(t *testing.T) {
	r, _ := newTestReset()
	r.Trigger(0, ModeLowFrequency, false)

	// 6 cycles at 100Hz is 60ms.
	r.Poll(59, false, 100)
	if !r.Active() {
		t.Fatal("should still be active at 59ms")
	}
	r.Poll(60, false, 100)
	if r.Active() {
		t.Error("should complete at 60ms")
	}
}

func TestResetTimedFallbackWithoutFrequency(t *testing.T) {
	r, _ := newTestReset()
	r.Trigger(0, ModeRemoteControl, false)

	r.Poll(59, false, 0)
	if !r.Active() {
		t.Fatal("fallback duration is 60ms")
	}
	r.Poll(60, false, 0)
	if r.Active() {
		t.Error("should complete at the 60ms fallback")
	}
}

func TestResetCompletionIndicatorWindow(t *testing.T) {
	r, gpio := newTestReset()
	r.Trigger(0, ModeHighFrequency, false)
	r.Poll(10, false, 1000000) // completes, indicator on

	r.Poll(10+ResetDoneLEDMS-1, false, 0)
	if !gpio.ReadPin(tpResetDone) {
		t.Error("indicator should stay on inside the window")
	}
	r.Poll(10+ResetDoneLEDMS, false, 0)
	if gpio.ReadPin(tpResetDone) {
		t.Error("indicator should clear after the window")
	}
}

func TestResetTriggerWhileActiveIsNoop(t *testing.T) {
	r, _ := newTestReset()
	r.Trigger(0, ModeSingleStep, false)
	r.Poll(10, true, 0)
	if r.CyclesCounted() != 1 {
		t.Fatalf("setup: expected 1 cycle, got %d", r.CyclesCounted())
	}

	if r.Trigger(20, ModeSingleStep, false) {
		t.Error("second trigger should report failure")
	}
	if r.CyclesCounted() != 1 {
		t.Error("second trigger must not reset the cycle count")
	}
}

func TestRequiredPulseDurations(t *testing.T) {
	cases := []struct {
		freq uint32
		want uint64
	}{
		{0, 60},       // no defined frequency: fallback
		{1, 6000},     // 6 cycles at 1Hz
		{100, 60},     // 6 cycles at 100Hz
		{1000, 10},    // computes 6ms, visibility floor applies
		{1000000, 10}, // computes 0ms, 1ms guard, then visibility floor
	}
	for _, c := range cases {
		if got := requiredPulseMS(c.freq); got != c.want {
			t.Errorf("requiredPulseMS(%d) = %d, want %d", c.freq, got, c.want)
		}
	}
}
