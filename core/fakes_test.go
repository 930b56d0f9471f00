package core

import "strings"

// Fake drivers for host-side tests. They record what the core asked
// the hardware to do.

type fakeGPIO struct {
	configured map[GPIOPin]bool
	pins       map[GPIOPin]bool
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{
		configured: make(map[GPIOPin]bool),
		pins:       make(map[GPIOPin]bool),
	}
}

func (g *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	g.configured[pin] = true
	g.pins[pin] = false
	return nil
}

func (g *fakeGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	g.configured[pin] = true
	g.pins[pin] = true // pull-up idles high
	return nil
}

func (g *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	g.pins[pin] = value
	return nil
}

func (g *fakeGPIO) ReadPin(pin GPIOPin) bool { return g.pins[pin] }

type fakeADC struct {
	value ADCValue
}

func (a *fakeADC) Init() error                               { return nil }
func (a *fakeADC) ConfigureChannel(ch ADCChannelID) error    { return nil }
func (a *fakeADC) ReadRaw(ch ADCChannelID) (ADCValue, error) { return a.value, nil }

type fakeTimer struct {
	callbacks map[TimerHandle]func()
	periods   map[TimerHandle]int32
	next      TimerHandle
	armCount  int
	cancels   int
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{
		callbacks: make(map[TimerHandle]func()),
		periods:   make(map[TimerHandle]int32),
	}
}

func (t *fakeTimer) Arm(periodUS int32, fn func()) (TimerHandle, error) {
	t.next++
	t.callbacks[t.next] = fn
	t.periods[t.next] = periodUS
	t.armCount++
	return t.next, nil
}

func (t *fakeTimer) Cancel(h TimerHandle) error {
	delete(t.callbacks, h)
	delete(t.periods, h)
	t.cancels++
	return nil
}

// fire invokes every armed callback once, simulating a timer interrupt.
func (t *fakeTimer) fire() {
	for _, fn := range t.callbacks {
		fn()
	}
}

// active reports the number of armed timers.
func (t *fakeTimer) active() int { return len(t.callbacks) }

// period reports the single armed period, 0 when none armed.
func (t *fakeTimer) period() int32 {
	for _, p := range t.periods {
		return p
	}
	return 0
}

type fakePWM struct {
	enabled map[GPIOPin]bool
	params  map[GPIOPin]PWMParams
	configs int
}

func newFakePWM() *fakePWM {
	return &fakePWM{
		enabled: make(map[GPIOPin]bool),
		params:  make(map[GPIOPin]PWMParams),
	}
}

func (p *fakePWM) ConfigureSquareWave(pin GPIOPin, params PWMParams) error {
	p.enabled[pin] = true
	p.params[pin] = params
	p.configs++
	return nil
}

func (p *fakePWM) Disable(pin GPIOPin) error {
	p.enabled[pin] = false
	return nil
}

type captureSink struct {
	lines []string
}

func (s *captureSink) WriteLine(line string) { s.lines = append(s.lines, line) }

func (s *captureSink) contains(sub string) bool {
	for _, l := range s.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func (s *captureSink) clear() { s.lines = nil }

// Test pin map, mirroring the rp2040 target assignments.
const (
	tpClockOut   GPIOPin = 9
	tpActivity   GPIOPin = 5
	tpSingleLED  GPIOPin = 6
	tpLowLED     GPIOPin = 7
	tpHighLED    GPIOPin = 8
	tpRemoteLED  GPIOPin = 10
	tpResetOut   GPIOPin = 20
	tpResetLow   GPIOPin = 13
	tpResetDone  GPIOPin = 14
	tpPowerOut   GPIOPin = 21
	tpPowerLED   GPIOPin = 15
	tpPotChannel         = ADCChannelID(0)
)

// rig wires a full control engine on fake drivers.
type rig struct {
	gpio  *fakeGPIO
	adc   *fakeADC
	timer *fakeTimer
	pwm   *fakePWM
	sink  *captureSink

	clock *ClockDriver
	reset *ResetSequencer
	power *PowerControl
	mc    *ModeController
	proc  *RemoteProcessor
}

func newRig() *rig {
	r := &rig{
		gpio:  newFakeGPIO(),
		adc:   &fakeADC{},
		timer: newFakeTimer(),
		pwm:   newFakePWM(),
		sink:  &captureSink{},
	}

	r.clock = NewClockDriver(r.gpio, r.timer, r.pwm, ClockPins{Output: tpClockOut, ActivityLED: tpActivity}, SysClockHz)
	r.reset = NewResetSequencer(r.gpio, ResetPins{Output: tpResetOut, LowLED: tpResetLow, DoneLED: tpResetDone})
	r.power = NewPowerControl(r.gpio, PowerPins{Output: tpPowerOut, LED: tpPowerLED})
	r.mc = NewModeController(r.gpio, r.adc, r.clock, r.reset, r.power, r.sink, ModePins{
		SingleStepLED: tpSingleLED,
		LowFreqLED:    tpLowLED,
		HighFreqLED:   tpHighLED,
		RemoteLED:     tpRemoteLED,
	}, tpPotChannel)
	r.proc = NewRemoteProcessor(r.mc, r.clock, r.reset, r.sink)

	r.clock.Init()
	r.reset.Init()
	r.power.Init()
	r.mc.Init(0)
	r.sink.clear()
	return r
}
