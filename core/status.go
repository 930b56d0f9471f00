package core

// StatusSink receives operator-facing text one line at a time. The
// firmware target fans lines out to the serial console and the OLED;
// tests capture them.
type StatusSink interface {
	WriteLine(line string)
}

// Status is the externally observable state the sink renders.
type Status struct {
	Mode          Mode
	Strategy      Strategy
	FreqHz        uint32
	AchievedHz    uint32
	Level         bool
	PowerOn       bool
	ResetActive   bool
	RemoteRunning bool
}

// RenderStatus formats the status block. No fmt here: rendering runs
// on the firmware side.
func RenderStatus(s Status) []string {
	lines := make([]string, 0, 8)
	lines = append(lines, "=== Clock Source Status ===")
	lines = append(lines, "Mode: "+s.Mode.String())

	switch s.Mode {
	case ModeSingleStep:
		if s.Strategy == StrategyManual {
			lines = append(lines, "Status: Active")
		} else {
			lines = append(lines, "Status: Waiting for button press")
		}
	case ModeLowFrequency, ModeHighFrequency:
		lines = append(lines, "Frequency: "+utoa(s.FreqHz)+" Hz")
	case ModeRemoteControl:
		if s.RemoteRunning {
			lines = append(lines, "Frequency: "+utoa(s.FreqHz)+" Hz (running)")
		} else {
			lines = append(lines, "Clock: stopped")
		}
	}

	if s.AchievedHz != 0 && s.AchievedHz != s.FreqHz {
		lines = append(lines, "Output: "+utoa(s.AchievedHz)+" Hz (clamped)")
	}
	if s.Level {
		lines = append(lines, "Clock State: HIGH")
	} else {
		lines = append(lines, "Clock State: LOW")
	}
	if s.PowerOn {
		lines = append(lines, "Power: ON")
	} else {
		lines = append(lines, "Power: OFF")
	}
	if s.ResetActive {
		lines = append(lines, "Reset: pulse active")
	}
	lines = append(lines, "===========================")
	return lines
}

// RenderMenu formats the remote-control help text.
func RenderMenu() []string {
	return []string{
		"=== Remote Control Mode ===",
		"Commands:",
		"  stop      - Stop the clock",
		"  toggle    - Toggle clock state once",
		"  freq <Hz> - Set frequency (1Hz to 1MHz) and run",
		"  reset     - Trigger reset pulse (6 clock cycles)",
		"  power on  - Turn power ON",
		"  power off - Turn power OFF",
		"  menu      - Show this menu again",
		"  status    - Show current status",
		"",
		"Press any mode button to return to previous mode",
		"Session times out after 30 seconds of inactivity",
	}
}
