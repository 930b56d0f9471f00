//go:build rp2040 || rp2350

package main

import (
	"machine"

	"multiclock/core"
)

// serialSink writes status lines to the USB CDC console.
type serialSink struct{}

func (serialSink) WriteLine(line string) {
	machine.Serial.Write([]byte(line))
	machine.Serial.Write([]byte("\r\n"))
}

// console assembles remote-command lines from the USB CDC byte stream:
// echo, backspace handling, printable-ASCII filter, bounded buffer.
// Core only ever sees completed lines.
type console struct {
	mc   *core.ModeController
	proc *core.RemoteProcessor

	buf [core.CmdBufferSize]byte
	n   int
}

func newConsole(mc *core.ModeController, proc *core.RemoteProcessor) *console {
	return &console{mc: mc, proc: proc}
}

// Poll drains buffered serial input. Every received byte refreshes the
// remote inactivity deadline.
func (c *console) Poll(now uint64) {
	for machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			return
		}
		c.mc.TouchRemote(now)

		switch {
		case b == '\r' || b == '\n':
			machine.Serial.Write([]byte("\r\n"))
			if c.n > 0 {
				line := string(c.buf[:c.n])
				c.n = 0
				c.proc.Execute(now, line)
			}
			c.prompt()

		case b == 0x08 || b == 0x7f: // backspace / DEL
			if c.n > 0 {
				c.n--
				machine.Serial.Write([]byte("\b \b"))
			}

		case b >= 0x20 && b < 0x7f:
			// Leave room for the final byte of a full command.
			if c.n < len(c.buf)-1 {
				c.buf[c.n] = b
				c.n++
				machine.Serial.WriteByte(b)
			}
		}
	}
}

func (c *console) prompt() {
	if c.mc.Mode() == core.ModeRemoteControl {
		machine.Serial.Write([]byte("Cmd> "))
	}
}
