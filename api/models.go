package api

import (
	"time"

	"github.com/lookbusy1344/rv64i-emulator/vm"
)

// SessionCreateRequest represents a request to create a new session.
// InitialRegisters mirrors host.New's construction-time register
// values: index i holds x(i+1)'s initial value as a decimal or 0x/0b
// literal. Exactly 31 entries are required; an empty string is rejected
// like any other malformed literal.
type SessionCreateRequest struct {
	InitialRegisters []string `json:"initialRegisters,omitempty"`
}

// SessionCreateResponse represents the response from creating a session.
type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStatusResponse represents the current status of a session.
type SessionStatusResponse struct {
	SessionID string   `json:"sessionId"`
	Running   bool     `json:"running"`
	NextLine  uint32   `json:"nextLine"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// LoadProgramRequest represents a request to assemble and load a program.
type LoadProgramRequest struct {
	Source string `json:"source"`
}

// LoadProgramResponse represents the response from loading a program.
type LoadProgramResponse struct {
	Errors []string `json:"errors,omitempty"`
}

// RegistersResponse represents the current register state, rendered
// the same three ways the embedding contract does.
type RegistersResponse struct {
	Registers [32]vm.RegisterRepr `json:"registers"`
}

// MemoryRequest represents a request for a window of memory.
type MemoryRequest struct {
	Address int `json:"address"`
	Length  int `json:"length"`
}

// MemoryResponse represents a rendered window of memory.
type MemoryResponse struct {
	Address int      `json:"address"`
	Bytes   []string `json:"bytes"`
	Ascii   []string `json:"ascii"`
}

// BreakpointRequest represents a request to toggle a line breakpoint.
type BreakpointRequest struct {
	Line uint32 `json:"line"`
}

// BreakpointsResponse represents the full per-line breakpoint vector.
type BreakpointsResponse struct {
	Breakpoints []bool `json:"breakpoints"`
}

// FrequencyRequest represents a request to set or clear the run-mode
// step frequency. A nil Hz means "as fast as possible."
type FrequencyRequest struct {
	Hz *uint32 `json:"hz"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// StateEvent represents a state change event broadcast after a step
// or run, matching the projections the embedding contract exposes.
type StateEvent struct {
	Running  bool   `json:"running"`
	NextLine uint32 `json:"nextLine"`
}

// ExecutionEvent represents an execution milestone (breakpoint hit,
// error, halted) broadcast over the websocket.
type ExecutionEvent struct {
	Event   string `json:"event"`
	Line    uint32 `json:"line,omitempty"`
	Message string `json:"message,omitempty"`
}
