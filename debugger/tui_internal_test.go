package debugger

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/host"
)

func newTestDebugger(t *testing.T) *Debugger {
	t.Helper()
	regs := make([]string, 31)
	for i := range regs {
		regs[i] = "0"
	}
	h, err := host.New(regs)
	if err != nil {
		t.Fatalf("host.New: %v", err)
	}
	return NewDebugger(h)
}

func TestTUIRenderDoesNotPanicWithoutSource(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 1")

	tui := NewTUI(dbg)
	tui.refresh()

	if tui.RegisterView.GetText(true) == "" {
		t.Error("expected register view to render something")
	}
}

func TestTUIRenderShowsSourceAndBreakpointMarker(t *testing.T) {
	dbg := newTestDebugger(t)
	dbg.Host.SetCode("addi x1, x0, 1\naddi x2, x0, 2")
	dbg.LoadSource("addi x1, x0, 1\naddi x2, x0, 2")
	dbg.Host.ToggleBreakpoint(2)

	tui := NewTUI(dbg)
	tui.refresh()

	if tui.SourceView.GetText(true) == "" {
		t.Error("expected source view to render something")
	}
}
