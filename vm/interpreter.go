// Package vm is the interpreter core: registers, program counter, and
// memory, driven by a decoded program one step at a time. It owns no
// I/O and no concurrency of its own; a host wraps it with a scheduler
// and mutual exclusion (see the host package).
package vm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/rv64i-emulator/isa"
	"github.com/lookbusy1344/rv64i-emulator/program"
	"github.com/lookbusy1344/rv64i-emulator/state"
)

// MemorySize is the fixed size of the flat byte-addressable address
// space. There is no virtual memory or MMIO, so this constant is the
// entire addressable range.
const MemorySize = 4096

// RegisterFile, PC, and Memory are re-exported from state so callers
// of this package never need to import it directly.
type (
	RegisterFile = state.RegisterFile
	PC           = state.PC
	Memory       = state.Memory
)

// Interpreter holds the full mutable state of one RV64I session:
// source text, the decoded program built from it, the register file,
// memory, program counter, accumulated diagnostics, and the run
// controls. It is not safe for concurrent use; see host.Host.
type Interpreter struct {
	catalog isa.Catalog

	code     string
	prog     program.Program
	regs     RegisterFile
	mem      *Memory
	pc       PC
	errors   []string
	warnings []string

	frequency *uint32
	running   bool
	steps     uint64

	initial [31]uint64 // initial values for x1..x31, set at construction

	stats    *PerformanceStatistics
	coverage *CodeCoverage
}

// New constructs an Interpreter. initialRegisters has 31 entries
// (skipping x0), each parsed with the immediate-literal grammar
// (decimal, 0x, 0b). A malformed entry is a construction error.
func New(catalog isa.Catalog, initialRegisters []string) (*Interpreter, error) {
	if len(initialRegisters) != 31 {
		return nil, fmt.Errorf("expected 31 initial register values, got %d", len(initialRegisters))
	}

	var initial [31]uint64
	for i, tok := range initialRegisters {
		v, ok := parseInitialValue(tok)
		if !ok {
			return nil, fmt.Errorf("invalid initial value for x%d: %q", i+1, tok)
		}
		initial[i] = v
	}

	vm := &Interpreter{
		catalog: catalog,
		mem:     state.NewMemory(MemorySize),
		initial: initial,
	}
	vm.applyInitialRegisters()
	return vm, nil
}

func (vm *Interpreter) applyInitialRegisters() {
	vm.regs.Reset()
	for i, v := range vm.initial {
		vm.regs.Set(i+1, v)
	}
}

// SetCode replaces the source buffer. If it differs from the cached
// copy, prior errors are cleared and the program is rebuilt; an
// identical second call is a no-op, leaving the program
// reference-equal to satisfy the idempotence invariant.
func (vm *Interpreter) SetCode(source string) {
	if source == vm.code {
		return
	}
	vm.code = source
	vm.errors = nil
	vm.prog, vm.errors = program.Assemble(source, vm.catalog)
}

// Running reports whether the interpreter is mid-run.
func (vm *Interpreter) Running() bool {
	return vm.running
}

// SetRunning forces the run flag directly. Exposed for host-paced
// scheduling and for tests; Run/Stop are the normal entry points.
func (vm *Interpreter) SetRunning(running bool) {
	vm.running = running
}

// Step executes exactly one instruction. Preconditions: Running()
// must be true. If the PC has advanced past the end of the decoded
// program, Step transitions to not-running and returns without
// executing anything.
func (vm *Interpreter) Step() {
	if !vm.running {
		panic("vm: Step called while not running")
	}

	index := vm.pc.Value / 4
	if index >= uint64(len(vm.prog)) {
		vm.running = false
		return
	}

	inst := vm.prog[index]
	vm.pc.Changed = false
	pcBefore := vm.pc.Value
	inst.Semantic(&vm.regs, &vm.pc, vm.mem)
	if !vm.pc.Changed {
		vm.pc.Value += 4
	}
	vm.regs.ZeroX0()
	vm.steps++

	if vm.stats != nil {
		vm.stats.RecordInstruction(inst.Descriptor.Mnemonic, pcBefore, 1)
		if vm.pc.Changed {
			vm.stats.RecordBranch(true)
			if inst.Descriptor.Mnemonic == "jal" || inst.Descriptor.Mnemonic == "jalr" {
				vm.stats.RecordFunctionCall(vm.pc.Value, inst.Descriptor.Mnemonic)
			}
		} else if strings.HasPrefix(inst.Descriptor.Mnemonic, "b") {
			vm.stats.RecordBranch(false)
		}
	}
	if vm.coverage != nil {
		vm.coverage.RecordExecution(inst.SourceLine, vm.steps)
	}
}

// Run sets the running flag and drives Step until it clears, stopping
// before any instruction whose breakpoint flag is set (leaving PC
// unchanged) and before the step that would run past the end of the
// program. In host-paced mode the caller instead sets running and
// relies on an external scheduler to call Step periodically; Run is
// the free-running convenience path.
func (vm *Interpreter) Run() {
	vm.running = true
	for vm.running {
		index := vm.pc.Value / 4
		if index < uint64(len(vm.prog)) && vm.prog[index].Breakpoint {
			vm.running = false
			return
		}
		vm.Step()
	}
}

// Stop clears the running flag. Observable only between steps.
func (vm *Interpreter) Stop() {
	vm.running = false
}

// Reset reinitializes registers, memory, and PC from the original
// construction-time values, and clears accumulated errors and
// warnings, while keeping the cached source and decoded program. A
// prior run's diagnostics would otherwise misleadingly persist across
// a reset that is meant to return to a clean starting state.
func (vm *Interpreter) Reset() {
	vm.applyInitialRegisters()
	vm.mem.Reset()
	vm.pc = PC{}
	vm.errors = nil
	vm.warnings = nil
	vm.running = false
	vm.steps = 0
	if vm.stats != nil {
		vm.stats.Start()
	}
	if vm.coverage != nil {
		vm.coverage.Start()
	}
}

// ToggleBreakpoint flips the breakpoint flag on every decoded
// instruction at the given 1-indexed source line.
func (vm *Interpreter) ToggleBreakpoint(lineNum uint32) {
	vm.prog.ToggleBreakpoint(lineNum)
}

// Breakpoints returns the per-line breakpoint map; see
// program.Program.Breakpoints.
func (vm *Interpreter) Breakpoints() []bool {
	return vm.prog.Breakpoints()
}

// NextInstLineNum returns the 0-indexed source line of the
// instruction at the current PC, or 0 if the PC is past the decoded
// program. Instructions record their SourceLine 1-indexed (matching
// how a human reads the file and how break <line> is entered), so
// this converts to 0-indexed on the way out.
func (vm *Interpreter) NextInstLineNum() uint32 {
	index := vm.pc.Value / 4
	if index >= uint64(len(vm.prog)) {
		return 0
	}
	return vm.prog[index].SourceLine - 1
}

// Errors returns the accumulated static source errors.
func (vm *Interpreter) Errors() []string {
	return vm.errors
}

// Warnings returns the (currently always empty) warnings channel,
// reserved by the design for future diagnostics the RV64I subset
// doesn't produce.
func (vm *Interpreter) Warnings() []string {
	return vm.warnings
}

// SetFrequency sets the host-paced step frequency in Hz, or clears it
// (nil) to mean "as fast as possible".
func (vm *Interpreter) SetFrequency(hz *uint32) {
	vm.frequency = hz
}

// EnableStatistics attaches a performance statistics collector that
// Step populates on every instruction. Pass nil to detach.
func (vm *Interpreter) EnableStatistics(stats *PerformanceStatistics) {
	vm.stats = stats
	if stats != nil {
		stats.Start()
	}
}

// Statistics returns the attached performance statistics collector,
// or nil if none is attached.
func (vm *Interpreter) Statistics() *PerformanceStatistics {
	return vm.stats
}

// EnableCoverage attaches a line coverage tracker that Step populates
// on every instruction. Pass nil to detach.
func (vm *Interpreter) EnableCoverage(coverage *CodeCoverage) {
	vm.coverage = coverage
	if coverage != nil {
		lineCount := uint32(len(strings.Split(vm.code, "\n")))
		coverage.SetLineRange(1, lineCount+1)
		coverage.Start()
	}
}

// Coverage returns the attached line coverage tracker, or nil if none
// is attached.
func (vm *Interpreter) Coverage() *CodeCoverage {
	return vm.coverage
}

// GetFrequency returns the current frequency setting.
func (vm *Interpreter) GetFrequency() *uint32 {
	return vm.frequency
}

// MemorySize returns the fixed memory size.
func (vm *Interpreter) MemorySize() uint32 {
	return MemorySize
}

// RegisterRepr is one row of the register presentation projection:
// decimal, zero-padded 16-digit hex, and zero-padded 64-bit binary.
type RegisterRepr struct {
	Decimal string
	Hex16   string
	Bin64   string
}

// RegistersRepr renders all 32 registers for display.
func (vm *Interpreter) RegistersRepr() [32]RegisterRepr {
	var out [32]RegisterRepr
	for i := 0; i < 32; i++ {
		v := vm.regs.Get(i)
		out[i] = RegisterRepr{
			Decimal: fmt.Sprintf("%d", v),
			Hex16:   fmt.Sprintf("%016X", v),
			Bin64:   fmt.Sprintf("%064b", v),
		}
	}
	return out
}

// MemoryByteRepr renders len bytes starting at start as hex byte
// pairs, e.g. "41".
func (vm *Interpreter) MemoryByteRepr(start, length int) []string {
	bytes := vm.mem.Bytes()
	out := make([]string, 0, length)
	for i := 0; i < length; i++ {
		addr := start + i
		if addr < 0 || addr >= len(bytes) {
			break
		}
		out = append(out, fmt.Sprintf("%02X", bytes[addr]))
	}
	return out
}

// MemoryAsciiRepr renders len bytes starting at start as their ASCII
// character when printable (32..126), else ".".
func (vm *Interpreter) MemoryAsciiRepr(start, length int) []string {
	bytes := vm.mem.Bytes()
	out := make([]string, 0, length)
	for i := 0; i < length; i++ {
		addr := start + i
		if addr < 0 || addr >= len(bytes) {
			break
		}
		b := bytes[addr]
		if b >= 32 && b <= 126 {
			out = append(out, string(rune(b)))
		} else {
			out = append(out, ".")
		}
	}
	return out
}

// PCValue returns the current program counter value.
func (vm *Interpreter) PCValue() uint64 {
	return vm.pc.Value
}

// RegisterValue returns a single register's raw value, for callers
// that don't need the full presentation projection.
func (vm *Interpreter) RegisterValue(i int) uint64 {
	return vm.regs.Get(i)
}

// parseInitialValue accepts a decimal, 0x, or 0b literal for an
// initial register value. Unlike asm.ParseImmediate (bounded to
// instruction operand widths of 12 or 20 bits), a register holds the
// full 64-bit range, so this parses directly with strconv rather than
// going through the operand-width machinery.
func parseInitialValue(token string) (uint64, bool) {
	negative := false
	s := token
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	magnitude, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		return uint64(-int64(magnitude)), true
	}
	return magnitude, true
}
