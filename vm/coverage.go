package vm

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// CoverageEntry records execution information for a single source line.
type CoverageEntry struct {
	Line           uint32
	ExecutionCount uint64
	FirstExecution uint64 // step number of first execution
	LastExecution  uint64 // step number of last execution
}

// CodeCoverage tracks which source lines have been executed.
type CodeCoverage struct {
	Enabled bool
	Writer  io.Writer

	executed map[uint32]*CoverageEntry // line -> execution info

	lineStart uint32
	lineEnd   uint32
}

// NewCodeCoverage creates a new line coverage tracker.
func NewCodeCoverage(writer io.Writer) *CodeCoverage {
	return &CodeCoverage{
		Enabled:  true,
		Writer:   writer,
		executed: make(map[uint32]*CoverageEntry),
	}
}

// SetLineRange sets the range of source lines to track for coverage
// percentage purposes (end is exclusive). A zero start and end disables
// range tracking; GetCoverage then returns 0 and GetUnexecutedLines nil.
func (c *CodeCoverage) SetLineRange(start, end uint32) {
	c.lineStart = start
	c.lineEnd = end
}

// Start resets the tracker, discarding any previously recorded lines.
func (c *CodeCoverage) Start() {
	c.executed = make(map[uint32]*CoverageEntry)
}

// RecordExecution records that the line was about to execute at the given step.
func (c *CodeCoverage) RecordExecution(line uint32, step uint64) {
	if !c.Enabled {
		return
	}

	if c.lineStart != 0 || c.lineEnd != 0 {
		if line < c.lineStart || line >= c.lineEnd {
			return
		}
	}

	if entry, exists := c.executed[line]; exists {
		entry.ExecutionCount++
		entry.LastExecution = step
	} else {
		c.executed[line] = &CoverageEntry{
			Line:           line,
			ExecutionCount: 1,
			FirstExecution: step,
			LastExecution:  step,
		}
	}
}

// GetCoverage returns the executed-line percentage across the configured range.
func (c *CodeCoverage) GetCoverage() float64 {
	if c.lineStart == 0 && c.lineEnd == 0 {
		return 0.0
	}

	total := c.lineEnd - c.lineStart
	if total == 0 {
		return 0.0
	}

	executedCount := uint32(len(c.executed)) // #nosec G115 -- map size bounded by source length
	return float64(executedCount) / float64(total) * 100.0
}

// GetExecutedLines returns all executed lines in ascending order.
func (c *CodeCoverage) GetExecutedLines() []uint32 {
	lines := make([]uint32, 0, len(c.executed))
	for line := range c.executed {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return lines
}

// GetUnexecutedLines returns lines within the configured range that never ran.
func (c *CodeCoverage) GetUnexecutedLines() []uint32 {
	if c.lineStart == 0 && c.lineEnd == 0 {
		return nil
	}

	unexecuted := make([]uint32, 0)
	for line := c.lineStart; line < c.lineEnd; line++ {
		if _, exists := c.executed[line]; !exists {
			unexecuted = append(unexecuted, line)
		}
	}
	return unexecuted
}

// GetEntry returns the coverage entry for a line, or nil if it never ran.
func (c *CodeCoverage) GetEntry(line uint32) *CoverageEntry {
	return c.executed[line]
}

// Flush writes a text coverage report to the configured writer.
func (c *CodeCoverage) Flush() error {
	if c.Writer == nil {
		return nil
	}

	header := "Line Coverage Report\n"
	header += "=====================\n\n"

	if c.lineStart != 0 || c.lineEnd != 0 {
		total := c.lineEnd - c.lineStart
		executedCount := len(c.executed)
		header += fmt.Sprintf("Line Range:     %d - %d\n", c.lineStart, c.lineEnd)
		header += fmt.Sprintf("Total Lines:    %d\n", total)
		header += fmt.Sprintf("Executed:       %d\n", executedCount)
		header += fmt.Sprintf("Not Executed:   %d\n", total-uint32(executedCount)) // #nosec G115 -- executedCount bounded by total
		header += fmt.Sprintf("Coverage:       %.2f%%\n\n", c.GetCoverage())
	} else {
		header += fmt.Sprintf("Total Executed: %d unique lines\n\n", len(c.executed))
	}

	if _, err := c.Writer.Write([]byte(header)); err != nil {
		return err
	}

	if _, err := c.Writer.Write([]byte("Executed Lines:\n---------------\n")); err != nil {
		return err
	}
	for _, line := range c.GetExecutedLines() {
		entry := c.executed[line]
		text := fmt.Sprintf("line %6d: executed %6d times (first: step %6d, last: step %6d)\n",
			entry.Line, entry.ExecutionCount, entry.FirstExecution, entry.LastExecution)
		if _, err := c.Writer.Write([]byte(text)); err != nil {
			return err
		}
	}

	unexecuted := c.GetUnexecutedLines()
	if len(unexecuted) > 0 {
		if _, err := c.Writer.Write([]byte("\nNot Executed:\n-------------\n")); err != nil {
			return err
		}
		for _, line := range unexecuted {
			if _, err := c.Writer.Write([]byte(fmt.Sprintf("line %d\n", line))); err != nil {
				return err
			}
		}
	}

	return nil
}

// ExportJSON writes the coverage data as JSON.
func (c *CodeCoverage) ExportJSON(w io.Writer) error {
	data := map[string]interface{}{
		"line_start":       c.lineStart,
		"line_end":         c.lineEnd,
		"coverage_percent": c.GetCoverage(),
		"executed_count":   len(c.executed),
		"unexecuted_count": len(c.GetUnexecutedLines()),
		"executed_lines":   c.executed,
		"unexecuted_lines": c.GetUnexecutedLines(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// String returns a short human-readable summary.
func (c *CodeCoverage) String() string {
	var sb strings.Builder

	sb.WriteString("Line Coverage Summary\n=====================\n\n")

	if c.lineStart != 0 || c.lineEnd != 0 {
		total := c.lineEnd - c.lineStart
		executedCount := len(c.executed)
		sb.WriteString(fmt.Sprintf("Line Range:     %d - %d\n", c.lineStart, c.lineEnd))
		sb.WriteString(fmt.Sprintf("Total Lines:    %d\n", total))
		sb.WriteString(fmt.Sprintf("Executed:       %d\n", executedCount))
		sb.WriteString(fmt.Sprintf("Not Executed:   %d\n", total-uint32(executedCount))) // #nosec G115 -- executedCount bounded by total
		sb.WriteString(fmt.Sprintf("Coverage:       %.2f%%\n", c.GetCoverage()))
	} else {
		sb.WriteString(fmt.Sprintf("Executed:       %d unique lines\n", len(c.executed)))
	}

	return sb.String()
}
