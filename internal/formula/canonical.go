package formula

import (
	"strings"
	"unicode"
)

// canonicalize rewrites a formula so that hclsyntax reads it the way a
// spreadsheet user means it. HCL identifiers may contain dashes, so `A1-B1`
// would otherwise be a single variable; a dash that directly follows an
// identifier is spaced out into a subtraction. Exponent signs inside number
// literals (`1e-3`) and quoted strings are left alone.
func canonicalize(src string) string {
	var b strings.Builder
	b.Grow(len(src) + 4)

	var (
		inIdent  bool
		inNumber bool
		inQuote  bool
		prev     rune
	)
	for _, r := range src {
		if inQuote {
			b.WriteRune(r)
			if r == '"' && prev != '\\' {
				inQuote = false
			}
			prev = r
			continue
		}

		switch {
		case r == '"':
			inQuote = true
			inIdent, inNumber = false, false
		case r == '-':
			if inNumber && (prev == 'e' || prev == 'E') {
				break
			}
			if inIdent {
				b.WriteString(" - ")
				inIdent = false
				prev = ' '
				continue
			}
			inNumber = false
		case unicode.IsLetter(r) || r == '_':
			if !inNumber {
				inIdent = true
			}
		case unicode.IsDigit(r):
			if !inIdent {
				inNumber = true
			}
		case r == '.':
			// decimal point or attribute access, keeps the current run
		default:
			inIdent, inNumber = false, false
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
