package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the full-screen debugger view: a source panel with
// breakpoint markers, a register panel, a memory panel, an output
// log, and a command line, arranged the way a split-pane debugger
// conventionally is.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application

	MainLayout   *tview.Flex
	SourceView   *tview.TextView
	RegisterView *tview.TextView
	MemoryView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	MemoryAddress int
}

// NewTUI builds a TUI over an already-constructed Debugger.
func NewTUI(d *Debugger) *TUI {
	tui := &TUI{Debugger: d, App: tview.NewApplication()}
	tui.initializeViews()
	tui.buildLayout()
	tui.setupKeyBindings()
	return tui
}

func (t *TUI) initializeViews() {
	t.SourceView = tview.NewTextView().SetDynamicColors(true)
	t.SourceView.SetBorder(true).SetTitle(" source ")

	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" registers ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true)
	t.MemoryView.SetBorder(true).SetTitle(" memory ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true)
	t.OutputView.SetBorder(true).SetTitle(" output ")

	t.CommandInput = tview.NewInputField().SetLabel("(rv64i) ")
	t.CommandInput.SetBorder(true)
}

func (t *TUI) buildLayout() {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.SourceView, 0, 2, false).
		AddItem(t.OutputView, 0, 1, false).
		AddItem(t.CommandInput, 3, 0, true)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 0, 1, false).
		AddItem(t.MemoryView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(right, 0, 1, false)

	t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput)
}

func (t *TUI) setupKeyBindings() {
	t.CommandInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := t.CommandInput.GetText()
		t.CommandInput.SetText("")

		if err := t.Debugger.ExecuteCommand(line); err != nil {
			t.Debugger.Printf("error: %v\n", err)
		}
		t.refresh()
	})
}

// refresh re-renders every panel from current host state.
func (t *TUI) refresh() {
	fmt.Fprint(t.OutputView, t.Debugger.GetOutput())
	t.renderSource()
	t.renderRegisters()
	t.renderMemory()
}

func (t *TUI) renderSource() {
	t.SourceView.Clear()
	marks := t.Debugger.Host.Breakpoints()
	current := t.Debugger.Host.NextInstLineNum()

	for i, line := range t.Debugger.Source {
		lineNum := uint32(i + 1)
		marker := " "
		if int(lineNum)-1 < len(marks) && marks[lineNum-1] {
			marker = "[red]*[white]"
		}
		pointer := "  "
		if uint32(i) == current {
			pointer = "->"
		}
		fmt.Fprintf(t.SourceView, "%s%s %4d  %s\n", marker, pointer, lineNum, line)
	}
}

func (t *TUI) renderRegisters() {
	t.RegisterView.Clear()
	regs := t.Debugger.Host.RegistersRepr()
	for i, r := range regs {
		fmt.Fprintf(t.RegisterView, "x%-2d  0x%s  %s\n", i, r.Hex16, r.Decimal)
	}
}

const memoryViewBytesPerRow = 16

func (t *TUI) renderMemory() {
	t.MemoryView.Clear()
	bytes := t.Debugger.Host.MemoryByteRepr(t.MemoryAddress, 128)
	ascii := t.Debugger.Host.MemoryAsciiRepr(t.MemoryAddress, 128)

	for row := 0; row < len(bytes); row += memoryViewBytesPerRow {
		end := row + memoryViewBytesPerRow
		if end > len(bytes) {
			end = len(bytes)
		}
		fmt.Fprintf(t.MemoryView, "%08x  %s  %s\n",
			t.MemoryAddress+row, strings.Join(bytes[row:end], " "), strings.Join(ascii[row:end], ""))
	}
}

// Run starts the terminal application loop.
func (t *TUI) Run() error {
	t.refresh()
	return t.App.Run()
}
