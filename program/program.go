// Package program turns RV64I assembly source into a decoded,
// ordered instruction sequence: one line-oriented pass over the
// source buffer, consulting the isa catalog for each mnemonic.
package program

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv64i-emulator/asm"
	"github.com/lookbusy1344/rv64i-emulator/isa"
)

// DecodedInstruction binds a matched descriptor to its source line
// and compiled semantic closure. Program index i corresponds to PC
// value 4*i; instruction width is fixed at 4 bytes regardless of the
// source line's token count.
type DecodedInstruction struct {
	Descriptor *isa.Descriptor
	SourceLine uint32 // 1-indexed
	Breakpoint bool
	Semantic   isa.SemanticFn
}

// Program is the ordered sequence of decoded instructions produced by
// Assemble.
type Program []DecodedInstruction

// Assemble decodes source against catalog, returning the resulting
// Program and any accumulated diagnostics. An unknown mnemonic is
// recorded and parsing continues to the next line; a descriptor match
// whose operands fail to parse stops decoding immediately, so the
// returned Program only ever holds lines before the failure.
func Assemble(source string, catalog isa.Catalog) (Program, []string) {
	var prog Program
	var errs []string

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		lineNum := uint32(i + 1)

		code, _, _ := strings.Cut(raw, "//")
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		tokens := asm.Tokenize(code)
		mnemonic := tokens[0]

		descriptor, ok := catalog.Lookup(mnemonic)
		if !ok {
			errs = append(errs, fmt.Sprintf("Invalid instruction on line %d: %s", lineNum, code))
			continue
		}

		args, err := descriptor.Parse(tokens)
		if err != nil {
			errs = append(errs, err.Error())
			break
		}

		prog = append(prog, DecodedInstruction{
			Descriptor: descriptor,
			SourceLine: lineNum,
			Semantic:   descriptor.Factory(args),
		})
	}

	return prog, errs
}

// MaxSourceLine returns the highest 1-indexed source line decoded
// into the program, or 0 for an empty program. breakpoints() uses
// this to size its result.
func (p Program) MaxSourceLine() uint32 {
	var max uint32
	for _, inst := range p {
		if inst.SourceLine > max {
			max = inst.SourceLine
		}
	}
	return max
}

// ToggleBreakpoint flips the breakpoint flag on every decoded
// instruction whose source line equals lineNum.
func (p Program) ToggleBreakpoint(lineNum uint32) {
	for i := range p {
		if p[i].SourceLine == lineNum {
			p[i].Breakpoint = !p[i].Breakpoint
		}
	}
}

// Breakpoints returns a slice of length MaxSourceLine() where index
// line-1 is true iff that source line's decoded instruction has its
// breakpoint flag set.
func (p Program) Breakpoints() []bool {
	result := make([]bool, p.MaxSourceLine())
	for _, inst := range p {
		if inst.Breakpoint {
			result[inst.SourceLine-1] = true
		}
	}
	return result
}
