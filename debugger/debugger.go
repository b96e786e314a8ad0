// Package debugger is the command-line REPL layer over a host.Host:
// it turns lines of operator input ("break 4", "step", "print x1")
// into Embedding calls, and renders the result back as text.
package debugger

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv64i-emulator/host"
)

// Debugger holds one REPL session's state: the host it drives,
// breakpoint bookkeeping, command history, and an output buffer the
// command handlers write into rather than printing directly, so a TUI
// can capture the same text a plain terminal would see.
type Debugger struct {
	Host *host.Host

	Breakpoints *BreakpointManager
	History     *CommandHistory

	Source []string

	Running     bool
	LastCommand string

	Output strings.Builder
}

// NewDebugger wraps an already-constructed host.
func NewDebugger(h *host.Host) *Debugger {
	return &Debugger{
		Host:        h,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(),
	}
}

// LoadSource records the assembly text for the "list" command. The
// host already holds the decoded program; this is purely a display
// convenience the host has no reason to carry.
func (d *Debugger) LoadSource(source string) {
	d.Source = strings.Split(source, "\n")
}

// ExecuteCommand parses and runs one line of REPL input. An empty
// line repeats the last command, matching the convention of stepping
// through a program by hitting return.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	if cmdLine == "" {
		cmdLine = d.LastCommand
	}
	if cmdLine != "" {
		d.History.Add(cmdLine)
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	return d.handleCommand(strings.ToLower(parts[0]), parts[1:])
}

func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		return d.cmdRun(args)
	case "step", "s":
		return d.cmdStep(args)
	case "stop":
		return d.cmdStop(args)
	case "reset":
		return d.cmdReset(args)

	case "break", "b":
		return d.cmdBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)

	case "print", "p":
		return d.cmdPrint(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "list", "l":
		return d.cmdList(args)

	case "help", "h", "?":
		return d.cmdHelp(args)

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// GetOutput returns and clears the output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	d.Output.WriteString(fmt.Sprintf(format, args...))
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	d.Output.WriteString(fmt.Sprintln(args...))
}
