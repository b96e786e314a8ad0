// Package asm implements the operand model and tokenizer shared by the
// instruction descriptors (isa) and the line-oriented assembler
// (program): splitting a source line into tokens, and parsing the
// literal operand forms (register names, signed 12/20-bit immediates,
// unsigned shift amounts) that a syntax template's placeholders can
// bind.
package asm

import "strings"

// Tokenize splits line on spaces, tabs, commas, and parentheses,
// keeping commas and parens as their own tokens and discarding empty
// ones produced by runs of whitespace. It is used both to lex an
// instruction's syntax template when cmd/isagen generates the catalog and to lex a
// source line at parse time, so the two always agree on what counts as
// a token.
func Tokenize(line string) []string {
	tokens := make([]string, 0, 8)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == ',' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case strings.ContainsRune(" \t", r):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
