package asm

import "strings"

// Format reformats RV64I assembly source to a canonical layout: one
// space after the mnemonic, ", " between operands, and a trailing
// comment kept after a single " // " separator (not column-aligned). This is a supplement beyond spec.md (no
// invariant depends on it) adapted from the teacher's source
// reformatter, which re-tokenizes each line and re-joins it with fixed
// spacing rather than attempting to preserve the author's original
// whitespace.
func Format(source string) string {
	lines := strings.Split(source, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		code, comment, hasComment := strings.Cut(line, "//")
		code = strings.TrimSpace(code)
		if code == "" {
			if hasComment {
				out[i] = "// " + strings.TrimSpace(comment)
			}
			continue
		}

		tokens := Tokenize(code)
		formatted := formatTokens(tokens)
		if hasComment {
			formatted += " // " + strings.TrimSpace(comment)
		}
		out[i] = formatted
	}

	return strings.Join(out, "\n")
}

// formatTokens re-joins a token stream produced by Tokenize with
// canonical spacing: the mnemonic is followed by a space, commas are
// followed by a space, and parens/offsets are packed tight against
// their neighbors (e.g. "lw rd, offset(rs1)").
func formatTokens(tokens []string) string {
	var sb strings.Builder
	for i, tok := range tokens {
		switch {
		case i == 0:
			sb.WriteString(tok)
		case tok == ",":
			sb.WriteString(", ")
		case tok == "(" || tok == ")":
			sb.WriteString(tok)
		case i > 0 && tokens[i-1] == "(":
			sb.WriteString(tok)
		default:
			if i == 1 {
				sb.WriteString(" ")
			}
			sb.WriteString(tok)
		}
	}
	return sb.String()
}
