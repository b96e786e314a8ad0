// Package host wraps the interpreter core with the mutual exclusion
// and periodic scheduling the specification requires of any embedder:
// a shared interpreter reference is held by both a UI and a run-mode
// scheduler callback, and every operation needs exclusive access.
package host

import (
	"sync"
	"time"

	"github.com/lookbusy1344/rv64i-emulator/isa"
	"github.com/lookbusy1344/rv64i-emulator/vm"
)

// Embedding is the narrow capability set a host needs to drive one
// interpreter session. It names exactly the operations the
// specification lists for an embedder: construction, code loading,
// run controls, breakpoints, diagnostics, and presentation
// projections. Nothing outside this interface is part of the
// embedding contract.
type Embedding interface {
	SetCode(source string)
	Running() bool
	SetRunning(running bool)
	SetFrequency(hz *uint32)
	GetFrequency() *uint32

	Run()
	Step()
	Stop()
	Reset()

	ToggleBreakpoint(lineNum uint32)
	Breakpoints() []bool
	NextInstLineNum() uint32

	Errors() []string
	Warnings() []string

	RegistersRepr() [32]vm.RegisterRepr
	MemorySize() uint32
	MemoryByteRepr(start, length int) []string
	MemoryAsciiRepr(start, length int) []string
}

// Host serializes access to one Embedding so a UI goroutine and a
// scheduler goroutine can share it safely. Every method acquires the
// lock for the duration of the call; there is no internal goroutine
// of its own beyond what Scheduler adds.
type Host struct {
	mu   sync.Mutex
	core Embedding
}

// New wraps an interpreter built against the default RV64I catalog.
func New(initialRegisters []string) (*Host, error) {
	interp, err := vm.New(isa.DefaultCatalog, initialRegisters)
	if err != nil {
		return nil, err
	}
	return &Host{core: interp}, nil
}

// NewWithCore wraps an already-constructed Embedding, for tests and
// alternate catalogs.
func NewWithCore(core Embedding) *Host {
	return &Host{core: core}
}

// Do runs fn with the host's lock held, giving callers a single
// escape hatch for compound operations (e.g. "set code then run")
// that must happen atomically with respect to the scheduler.
func (h *Host) Do(fn func(Embedding)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.core)
}

func (h *Host) SetCode(source string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.SetCode(source)
}

func (h *Host) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.Running()
}

func (h *Host) SetRunning(running bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.SetRunning(running)
}

func (h *Host) SetFrequency(hz *uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.SetFrequency(hz)
}

func (h *Host) GetFrequency() *uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.GetFrequency()
}

func (h *Host) MemorySize() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.MemorySize()
}

func (h *Host) Step() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.Step()
}

func (h *Host) Run() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.Run()
}

func (h *Host) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.Stop()
}

func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.Reset()
}

func (h *Host) ToggleBreakpoint(lineNum uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.core.ToggleBreakpoint(lineNum)
}

func (h *Host) Breakpoints() []bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.Breakpoints()
}

func (h *Host) NextInstLineNum() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.NextInstLineNum()
}

func (h *Host) Errors() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.Errors()
}

func (h *Host) Warnings() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.Warnings()
}

func (h *Host) RegistersRepr() [32]vm.RegisterRepr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.RegistersRepr()
}

func (h *Host) MemoryByteRepr(start, length int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.MemoryByteRepr(start, length)
}

func (h *Host) MemoryAsciiRepr(start, length int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.core.MemoryAsciiRepr(start, length)
}

// EnableStatistics and EnableCoverage reach past the narrow Embedding
// contract to the concrete interpreter's optional profiling hooks; a
// core that isn't a *vm.Interpreter (e.g. a test double) silently
// ignores the call.

func (h *Host) EnableStatistics(stats *vm.PerformanceStatistics) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if interp, ok := h.core.(*vm.Interpreter); ok {
		interp.EnableStatistics(stats)
	}
}

func (h *Host) Statistics() *vm.PerformanceStatistics {
	h.mu.Lock()
	defer h.mu.Unlock()
	if interp, ok := h.core.(*vm.Interpreter); ok {
		return interp.Statistics()
	}
	return nil
}

func (h *Host) EnableCoverage(coverage *vm.CodeCoverage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if interp, ok := h.core.(*vm.Interpreter); ok {
		interp.EnableCoverage(coverage)
	}
}

func (h *Host) Coverage() *vm.CodeCoverage {
	h.mu.Lock()
	defer h.mu.Unlock()
	if interp, ok := h.core.(*vm.Interpreter); ok {
		return interp.Coverage()
	}
	return nil
}

// Scheduler drives Step at a configured frequency for host-paced run
// mode. The interpreter core makes no timer of its own; this is the
// "periodic scheduler" the specification asks an embedding to supply.
type Scheduler struct {
	host   *Host
	ticker *time.Ticker
	stop   chan struct{}
}

// NewScheduler builds a scheduler that calls host.Step() at the given
// frequency whenever the host reports Running().
func NewScheduler(host *Host, hz uint32) *Scheduler {
	if hz == 0 {
		hz = 1
	}
	return &Scheduler{
		host:   host,
		ticker: time.NewTicker(time.Second / time.Duration(hz)),
		stop:   make(chan struct{}),
	}
}

// Start runs the scheduler loop until Stop is called. Intended to run
// in its own goroutine.
func (s *Scheduler) Start() {
	for {
		select {
		case <-s.stop:
			s.ticker.Stop()
			return
		case <-s.ticker.C:
			if s.host.Running() {
				s.host.Step()
			}
		}
	}
}

// Stop halts the scheduler loop.
func (s *Scheduler) Stop() {
	close(s.stop)
}
