// Package bracketed implements the Bracketed Parser: human-notation
// "(AI)value(AI)value…" strings, producing the normalized unbracketed
// form and the extracted-AI table.
//
// Grounded on gs1_parseAIdata in the GS1 Barcode Syntax Engine's ai.c.
package bracketed

import (
	"strings"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
	"github.com/gs1ai/gs1ai/lint"
	"github.com/gs1ai/gs1ai/parse/unbracketed"
)

// Parse parses input, a "(AI)value…" string, against tbl.
func Parse(tbl *aitable.Table, input string) (*aidata.Table, error) {
	out := aidata.NewTable(aidata.NewBuffer(len(input) + len(input)/4 + 1))

	first := true
	prevFNC1Required := false

	p := 0
	for p < len(input) {
		if input[p] != '(' {
			return nil, gs1err.New(gs1err.ErrAIParseFailed)
		}
		closeIdx := strings.IndexByte(input[p+1:], ')')
		if closeIdx < 0 {
			return nil, gs1err.New(gs1err.ErrAIParseFailed)
		}
		ai := input[p+1 : p+1+closeIdx]
		p = p + 1 + closeIdx + 1

		entry, ok := tbl.Lookup(ai, len(ai), false)
		if !ok {
			return nil, gs1err.NewAI(gs1err.ErrAIUnrecognised, ai)
		}

		value, consumed, err := readBracketedValue(input[p:])
		if err != nil {
			return nil, err
		}
		p += consumed

		if err := lint.CheckNoCarat(value); err != nil {
			return nil, gs1err.NewAI(gs1err.ErrAIContainsIllegalCaratCharacter, entry.AI)
		}
		if err := lint.CheckValueLength(entry, value); err != nil {
			if lerr, ok := err.(*lint.ValueLengthError); ok && lerr.TooShort {
				return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooShort, entry.AI)
			}
			return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooLong, entry.AI)
		}

		if first || prevFNC1Required {
			out.Buffer.AppendFNC1()
		}
		out.Buffer.AppendAI(entry.AI)
		offset, length := out.Buffer.AppendValue(value)

		if addErr := out.Add(aidata.Element{
			Kind:        aidata.KindAIValue,
			AI:          entry.AI,
			AIEntry:     entry,
			ValueOffset: offset,
			ValueLength: length,
			DLPathOrder: aidata.Attribute,
		}); addErr != nil {
			return nil, gs1err.New(gs1err.ErrTooManyAIs)
		}

		first = false
		prevFNC1Required = entry.FNC1Required
	}

	// Reachable only for empty input: once the loop runs at all it either
	// extracts a pair or fails.
	if out.Len() == 0 {
		return nil, gs1err.New(gs1err.ErrAIParseFailed)
	}

	if _, err := unbracketed.Process(tbl, out.Buffer.String(), false, unbracketed.Options{}); err != nil {
		return nil, err
	}

	return out, nil
}

// readBracketedValue reads one value up to (but not including) the next
// unescaped '(' or end of string, unescaping "\(" to a literal '('. It
// returns the decoded value and the number of input bytes consumed.
func readBracketedValue(s string) (value string, consumed int, err error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '(':
			b.WriteByte('(')
			i += 2
		case s[i] == '(':
			return b.String(), i, nil
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), i, nil
}
