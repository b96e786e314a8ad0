package debugger

import (
	"fmt"
	"strconv"

	"github.com/lookbusy1344/rv64i-emulator/abi"
)

func (d *Debugger) cmdRun(_ []string) error {
	d.Host.SetRunning(true)
	d.Host.Run()
	d.reportStop()
	return nil
}

func (d *Debugger) cmdStep(_ []string) error {
	d.Host.SetRunning(true)
	d.Host.Step()
	d.reportStop()
	return nil
}

func (d *Debugger) cmdStop(_ []string) error {
	d.Host.Stop()
	d.Println("stopped")
	return nil
}

func (d *Debugger) cmdReset(_ []string) error {
	d.Host.Reset()
	for _, bp := range d.Breakpoints.All() {
		d.Host.ToggleBreakpoint(bp.Line)
	}
	d.Breakpoints.Clear()
	d.Println("reset")
	return nil
}

// reportStop prints where execution landed and surfaces any errors or
// warnings the interpreter accumulated while running.
func (d *Debugger) reportStop() {
	line := d.Host.NextInstLineNum() + 1 // display is 1-indexed, matching break <line>
	if d.Host.Running() {
		d.Printf("paused before line %d\n", line)
	} else {
		d.Printf("stopped before line %d\n", line)
	}
	for _, e := range d.Host.Errors() {
		d.Printf("error: %s\n", e)
	}
	for _, w := range d.Host.Warnings() {
		d.Printf("warning: %s\n", w)
	}
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: break <line>")
	}
	line, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid line number: %s", args[0])
	}

	d.Host.ToggleBreakpoint(uint32(line))
	if bp := d.Breakpoints.Toggle(uint32(line)); bp != nil {
		d.Printf("breakpoint %d set at line %d\n", bp.ID, bp.Line)
	} else {
		d.Printf("breakpoint at line %d cleared\n", line)
	}
	return nil
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <line>")
	}
	line, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid line number: %s", args[0])
	}

	if _, ok := d.Breakpoints.Get(uint32(line)); !ok {
		return fmt.Errorf("no breakpoint at line %d", line)
	}
	d.Host.ToggleBreakpoint(uint32(line))
	d.Breakpoints.Toggle(uint32(line))
	d.Printf("breakpoint at line %d deleted\n", line)
	return nil
}

func (d *Debugger) cmdPrint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: print <register>")
	}

	idx, ok := abi.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown register: %s", args[0])
	}

	regs := d.Host.RegistersRepr()
	r := regs[idx]
	d.Printf("%s = %s (0x%s)\n", abi.CanonicalName(idx), r.Decimal, r.Hex16)
	return nil
}

func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info registers|breakpoints")
	}

	switch args[0] {
	case "registers", "reg", "r":
		regs := d.Host.RegistersRepr()
		for i, r := range regs {
			d.Printf("%-4s = %-20s 0x%s\n", abi.CanonicalName(i), r.Decimal, r.Hex16)
		}
	case "breakpoints", "break", "b":
		bps := d.Breakpoints.All()
		if len(bps) == 0 {
			d.Println("no breakpoints set")
			return nil
		}
		for _, bp := range bps {
			d.Printf("%d: line %d, hits %d\n", bp.ID, bp.Line, bp.HitCount)
		}
	default:
		return fmt.Errorf("unknown info subcommand: %s", args[0])
	}
	return nil
}

func (d *Debugger) cmdList(args []string) error {
	if len(d.Source) == 0 {
		return fmt.Errorf("no source loaded")
	}

	start, end := 1, len(d.Source)
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line number: %s", args[0])
		}
		start, end = n-5, n+5
	}
	if start < 1 {
		start = 1
	}
	if end > len(d.Source) {
		end = len(d.Source)
	}

	marks := d.Host.Breakpoints()
	for i := start; i <= end; i++ {
		mark := " "
		if i-1 < len(marks) && marks[i-1] {
			mark = "*"
		}
		d.Printf("%s%4d  %s\n", mark, i, d.Source[i-1])
	}
	return nil
}

func (d *Debugger) cmdHelp(_ []string) error {
	d.Println("run (r)        run until a breakpoint or the program ends")
	d.Println("step (s)       execute one instruction")
	d.Println("stop           halt a running program")
	d.Println("reset          clear registers, memory, PC, and breakpoints")
	d.Println("break (b) N    toggle a breakpoint on source line N")
	d.Println("delete (d) N   remove the breakpoint on source line N")
	d.Println("print (p) REG  show one register's value")
	d.Println("info (i) registers|breakpoints")
	d.Println("list (l) [N]   show source, optionally centered on line N")
	d.Println("help (h, ?)    show this message")
	return nil
}
