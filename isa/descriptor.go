package isa

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv64i-emulator/abi"
	"github.com/lookbusy1344/rv64i-emulator/asm"
	"github.com/lookbusy1344/rv64i-emulator/state"
)

// SemanticFn realizes an instruction's behavior over the three
// resources an instruction is permitted to touch. It is produced by
// a Descriptor's Factory from the operands Parse bound, and is pure
// in the sense that it only mutates regs, pc, and mem.
type SemanticFn func(regs *state.RegisterFile, pc *state.PC, mem *state.Memory)

// Factory turns a successfully parsed operand list into an executable
// SemanticFn. Generated factories close over the typed Args; they
// never re-inspect the token stream.
type Factory func(args []Arg) SemanticFn

// recognized placeholder names in a syntax template.
const (
	placeholderRd     = "rd"
	placeholderRs1    = "rs1"
	placeholderRs2    = "rs2"
	placeholderImm    = "imm"
	placeholderOffset = "offset"
	placeholderImm20  = "imm20"
	placeholderShamt  = "shamt"
)

// Descriptor is the static, immutable record for one mnemonic: its
// syntax template, documentation, and the factory that compiles bound
// operands into a semantic closure.
type Descriptor struct {
	Mnemonic    string
	Syntax      []string // tokenized template: literals and placeholders
	Description string
	Expansion   string
	Factory     Factory
}

// Parse matches tokens against the descriptor's syntax template,
// returning the bound operand list on success. On any mismatch it
// returns the stable diagnostic string from the error-strings
// contract, naming the mnemonic, the expected syntax, and the
// observed tokens.
func (d *Descriptor) Parse(tokens []string) ([]Arg, error) {
	if len(tokens) != len(d.Syntax) {
		return nil, d.formatError(tokens)
	}

	args := make([]Arg, 0, len(tokens))
	for i, tmpl := range d.Syntax {
		tok := tokens[i]
		switch tmpl {
		case placeholderRd, placeholderRs1, placeholderRs2:
			idx, ok := abi.Lookup(tok)
			if !ok {
				return nil, d.formatError(tokens)
			}
			args = append(args, RegisterArg{Index: idx})
		case placeholderImm, placeholderOffset:
			bits, ok := asm.ParseImmediate(tok, 12)
			if !ok {
				return nil, d.formatError(tokens)
			}
			args = append(args, Imm12{Bits: [12]bool(bits)})
		case placeholderImm20:
			bits, ok := asm.ParseImmediate(tok, 20)
			if !ok {
				return nil, d.formatError(tokens)
			}
			args = append(args, Imm20{Bits: [20]bool(bits)})
		case placeholderShamt:
			amount, ok := asm.ParseShamt(tok)
			if !ok {
				return nil, d.formatError(tokens)
			}
			args = append(args, ShamtArg{Amount: amount})
		default:
			if tok != tmpl {
				return nil, d.formatError(tokens)
			}
		}
	}

	return args, nil
}

// formatError builds the stable diagnostic:
// `Invalid instruction format. Instruction "<m>" should have format
// "<syntax>" but instead had "<tokens>"`.
func (d *Descriptor) formatError(tokens []string) error {
	return fmt.Errorf(
		"Invalid instruction format. Instruction %q should have format %q but instead had %q",
		d.Mnemonic, strings.Join(d.Syntax, " "), strings.Join(tokens, " "),
	)
}
