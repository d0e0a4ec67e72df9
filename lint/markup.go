package lint

import "strings"

// Markup formats a linter failure as GS1's "(AI)prefix|bad|suffix" marked-up
// string, pinpointing the offending span within the full AI value: prefix
// is everything before the bad span, bad is the span itself, suffix is
// everything after. Grounded on the linter error markup convention
// described by the GS1 Barcode Syntax Engine (gs1_lint_err_markup in
// ai.c's error-reporting path), reworked as a pure formatting function
// instead of writing into a caller-supplied fixed buffer.
func Markup(ai, fullValue string, offset, length int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(fullValue) {
		offset = len(fullValue)
	}
	end := offset + length
	if end > len(fullValue) || length <= 0 {
		end = offset
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(ai)
	b.WriteByte(')')
	b.WriteString(fullValue[:offset])
	b.WriteByte('|')
	b.WriteString(fullValue[offset:end])
	b.WriteByte('|')
	b.WriteString(fullValue[end:])
	return b.String()
}
