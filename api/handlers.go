package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lookbusy1344/rv64i-emulator/host"
)

// handleCreateSession handles POST /api/v1/session
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.sessions.CreateSession(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create session: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, SessionCreateResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

// handleListSessions handles GET /api/v1/session
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids := s.sessions.ListSessions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": ids,
		"count":    len(ids),
	})
}

// handleGetSessionStatus handles GET /api/v1/session/{id}
func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, SessionStatusResponse{
		SessionID: sessionID,
		Running:   session.Host.Running(),
		NextLine:  session.Host.NextInstLineNum(),
		Errors:    session.Host.Errors(),
		Warnings:  session.Host.Warnings(),
	})
}

// handleDestroySession handles DELETE /api/v1/session/{id}
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Session destroyed"})
}

// handleLoadProgram handles POST /api/v1/session/{id}/load
func (s *Server) handleLoadProgram(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req LoadProgramRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.Host.SetCode(req.Source)
	writeJSON(w, http.StatusOK, LoadProgramResponse{Errors: session.Host.Errors()})
	s.broadcastState(sessionID, session.Host)
}

// handleRun handles POST /api/v1/session/{id}/run
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.Host.SetRunning(true)
	session.Host.Run()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	s.broadcastState(sessionID, session.Host)
}

// handleStop handles POST /api/v1/session/{id}/stop
func (s *Server) handleStop(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.Host.Stop()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	s.broadcastState(sessionID, session.Host)
}

// handleStep handles POST /api/v1/session/{id}/step
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.Host.SetRunning(true)
	session.Host.Step()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	s.broadcastState(sessionID, session.Host)
}

// handleReset handles POST /api/v1/session/{id}/reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.Host.Reset()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	s.broadcastState(sessionID, session.Host)
}

// handleGetRegisters handles GET /api/v1/session/{id}/registers
func (s *Server) handleGetRegisters(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, RegistersResponse{Registers: session.Host.RegistersRepr()})
}

// handleGetMemory handles GET /api/v1/session/{id}/memory?address=N&length=N
func (s *Server) handleGetMemory(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	address, _ := strconv.Atoi(r.URL.Query().Get("address"))
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil || length <= 0 {
		length = 64
	}

	writeJSON(w, http.StatusOK, MemoryResponse{
		Address: address,
		Bytes:   session.Host.MemoryByteRepr(address, length),
		Ascii:   session.Host.MemoryAsciiRepr(address, length),
	})
}

// handleBreakpoint handles POST /api/v1/session/{id}/breakpoint
func (s *Server) handleBreakpoint(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req BreakpointRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.Host.ToggleBreakpoint(req.Line)
	writeJSON(w, http.StatusOK, BreakpointsResponse{Breakpoints: session.Host.Breakpoints()})
}

// handleListBreakpoints handles GET /api/v1/session/{id}/breakpoints
func (s *Server) handleListBreakpoints(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, BreakpointsResponse{Breakpoints: session.Host.Breakpoints()})
}

// handleSetFrequency handles POST /api/v1/session/{id}/frequency
func (s *Server) handleSetFrequency(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req FrequencyRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.Host.SetFrequency(req.Hz)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// broadcastState pushes a state projection to any subscribed
// websocket clients after an operation that may have changed it.
func (s *Server) broadcastState(sessionID string, h *host.Host) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastState(sessionID, map[string]interface{}{
		"running":  h.Running(),
		"nextLine": h.NextInstLineNum(),
	})
}
