package core

import (
	"errors"
	"strconv"
	"strings"
)

// CommandKind tags a parsed remote command.
type CommandKind uint8

const (
	CmdUnknown CommandKind = iota
	CmdEmpty
	CmdStop
	CmdToggle
	CmdFreq
	CmdReset
	CmdPowerOn
	CmdPowerOff
	CmdMenu
	CmdStatus
)

// Command is one fully-parsed remote command.
type Command struct {
	Kind   CommandKind
	FreqHz uint64 // argument of CmdFreq, range-checked by the processor
	Raw    string // original text, kept for error reporting
}

var (
	ErrMissingFrequency = errors.New("missing frequency value")
	ErrInvalidFrequency = errors.New("invalid frequency format")
)

// ParseCommand turns one completed input line into a tagged command.
// Dispatching on the tag instead of raw strings removes the
// prefix-matching traps of string dispatch ("power on" vs "power").
// Unknown input parses to CmdUnknown rather than an error so the
// processor can report it.
func ParseCommand(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		return Command{Kind: CmdEmpty}, nil
	case "stop":
		return Command{Kind: CmdStop}, nil
	case "toggle":
		return Command{Kind: CmdToggle}, nil
	case "reset":
		return Command{Kind: CmdReset}, nil
	case "power on":
		return Command{Kind: CmdPowerOn}, nil
	case "power off":
		return Command{Kind: CmdPowerOff}, nil
	case "menu":
		return Command{Kind: CmdMenu}, nil
	case "status":
		return Command{Kind: CmdStatus}, nil
	case "freq":
		return Command{Kind: CmdFreq, Raw: trimmed}, ErrMissingFrequency
	}

	if arg, ok := strings.CutPrefix(trimmed, "freq "); ok {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return Command{Kind: CmdFreq, Raw: trimmed}, ErrMissingFrequency
		}
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return Command{Kind: CmdFreq, Raw: trimmed}, ErrInvalidFrequency
		}
		return Command{Kind: CmdFreq, FreqHz: n}, nil
	}

	return Command{Kind: CmdUnknown, Raw: trimmed}, nil
}

// RemoteSession is the transient command-interpreter state. It exists
// only while the current mode is remote control and is reset to empty
// on every entry and exit.
type RemoteSession struct {
	setFreqHz  uint32
	running    bool
	deadlineMS uint64
}

// Reset clears the session and arms the inactivity deadline.
func (s *RemoteSession) Reset(now uint64) {
	*s = RemoteSession{deadlineMS: now + RemoteTimeoutMS}
}

// Clear empties the session with no deadline armed.
func (s *RemoteSession) Clear() { *s = RemoteSession{} }

// Touch pushes the inactivity deadline out again.
func (s *RemoteSession) Touch(now uint64) { s.deadlineMS = now + RemoteTimeoutMS }

// Expired reports whether the inactivity deadline has passed.
func (s *RemoteSession) Expired(now uint64) bool {
	return s.deadlineMS != 0 && now > s.deadlineMS
}

// SetFrequency reports the last frequency set over the session, 0 when
// none has been set.
func (s *RemoteSession) SetFrequency() uint32 { return s.setFreqHz }

// Running reports whether session-commanded generation is active.
func (s *RemoteSession) Running() bool { return s.running }

// RemoteProcessor interprets parsed command tokens against the mode
// controller and clock driver. Malformed or out-of-range input is
// reported to the sink and mutates nothing.
type RemoteProcessor struct {
	mc    *ModeController
	clock *ClockDriver
	reset *ResetSequencer
	sink  StatusSink
}

func NewRemoteProcessor(mc *ModeController, clock *ClockDriver, reset *ResetSequencer, sink StatusSink) *RemoteProcessor {
	return &RemoteProcessor{mc: mc, clock: clock, reset: reset, sink: sink}
}

// Execute processes one completed command line. Lines arriving while
// remote control is not active are dropped; the serial layer only
// feeds lines during a session, so this is a backstop.
func (p *RemoteProcessor) Execute(now uint64, line string) {
	if p.mc.Mode() != ModeRemoteControl {
		return
	}

	cmd, err := ParseCommand(line)
	switch err {
	case nil:
	case ErrMissingFrequency:
		p.sink.WriteLine("Missing frequency value. Usage: freq <Hz>")
		return
	case ErrInvalidFrequency:
		p.sink.WriteLine("Invalid frequency format. Use numbers only.")
		return
	default:
		p.sink.WriteLine(err.Error())
		return
	}

	session := p.mc.Session()

	switch cmd.Kind {
	case CmdEmpty:
		return

	case CmdStop:
		p.clock.Stop()
		session.running = false
		p.sink.WriteLine("Clock stopped")

	case CmdToggle:
		p.clock.Stop()
		p.clock.Toggle()
		session.running = false
		if p.clock.Level() {
			p.sink.WriteLine("Clock toggled to HIGH")
		} else {
			p.sink.WriteLine("Clock toggled to LOW")
		}

	case CmdFreq:
		if cmd.FreqHz < MinRemoteFreq || cmd.FreqHz > MaxRemoteFreq {
			p.sink.WriteLine("Invalid frequency. Range: " + utoa(MinRemoteFreq) + " Hz to " + utoa(MaxRemoteFreq) + " Hz")
			return
		}
		freq := uint32(cmd.FreqHz)
		if p.clock.StartPWM(freq, MaxRemoteFreq) != nil {
			p.sink.WriteLine("Invalid frequency. Range: " + utoa(MinRemoteFreq) + " Hz to " + utoa(MaxRemoteFreq) + " Hz")
			return
		}
		session.setFreqHz = freq
		session.running = true
		p.sink.WriteLine("Frequency set to " + utoa(freq) + " Hz and running")
		if achieved := p.clock.AchievedFrequency(); achieved != freq {
			p.sink.WriteLine("Output clamped to " + utoa(achieved) + " Hz by PWM hardware range")
		}

	case CmdReset:
		if p.reset.Trigger(now, p.mc.Mode(), p.clock.Level()) {
			p.sink.WriteLine("Reset pulse initiated")
		} else {
			p.sink.WriteLine("Reset pulse already active")
		}

	case CmdPowerOn:
		// The off-to-on hook forces single-step mode, which also ends
		// the remote session.
		p.mc.SetPower(now, true)

	case CmdPowerOff:
		p.mc.SetPower(now, false)

	case CmdMenu:
		for _, l := range RenderMenu() {
			p.sink.WriteLine(l)
		}

	case CmdStatus:
		p.mc.EmitStatus()
		return

	default:
		p.sink.WriteLine("Unknown command: " + cmd.Raw)
		p.sink.WriteLine("Type 'menu' for help")
		return
	}

	p.mc.EmitStatus()
}
