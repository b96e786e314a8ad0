package debugger

import (
	"strings"
	"testing"
)

func TestDebuggerRunAndPrint(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 5\nadd x2, x1, x1")

	if err := dbg.ExecuteCommand("run"); err != nil {
		t.Fatalf("run: %v", err)
	}
	dbg.GetOutput()

	if err := dbg.ExecuteCommand("print x2"); err != nil {
		t.Fatalf("print x2: %v", err)
	}
	out := dbg.GetOutput()
	if !strings.Contains(out, "x2 = 10") {
		t.Errorf("expected output to report x2 = 10, got %q", out)
	}
}

func TestDebuggerBreakAndDeleteRoundTrip(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 1\naddi x2, x0, 2")

	if err := dbg.ExecuteCommand("break 2"); err != nil {
		t.Fatalf("break 2: %v", err)
	}
	if !dbg.Host.Breakpoints()[1] {
		t.Fatal("expected line 2 to carry a breakpoint")
	}
	if dbg.Breakpoints.Count() != 1 {
		t.Fatalf("Breakpoints.Count() = %d, want 1", dbg.Breakpoints.Count())
	}

	if err := dbg.ExecuteCommand("delete 2"); err != nil {
		t.Fatalf("delete 2: %v", err)
	}
	if dbg.Host.Breakpoints()[1] {
		t.Error("expected line 2 breakpoint to be cleared")
	}
}

func TestDebuggerEmptyCommandRepeatsLast(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 1\naddi x1, x1, 1\naddi x1, x1, 1")

	if err := dbg.ExecuteCommand("step"); err != nil {
		t.Fatalf("step: %v", err)
	}
	dbg.GetOutput()

	if err := dbg.ExecuteCommand(""); err != nil {
		t.Fatalf("repeated step: %v", err)
	}

	regs := dbg.Host.RegistersRepr()
	if regs[1].Decimal != "2" {
		t.Errorf("expected x1 == 2 after two steps, got %s", regs[1].Decimal)
	}
}

func TestDebuggerUnknownCommandErrors(t *testing.T) {
	dbg := newTestDebugger(t)
	if err := dbg.ExecuteCommand("frobnicate"); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestDebuggerInfoRegisters(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 3")
	dbg.Host.Run()
	dbg.GetOutput()

	if err := dbg.ExecuteCommand("info registers"); err != nil {
		t.Fatalf("info registers: %v", err)
	}
	out := dbg.GetOutput()
	if !strings.Contains(out, "x1") {
		t.Errorf("expected register dump to mention x1, got %q", out)
	}
}
