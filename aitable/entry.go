// Package aitable holds the AI (Application Identifier) dictionary: the
// immutable table of AI entries together with the indices derived from it
// (AI-length-by-prefix, the sorted key-qualifier sequence set) and the
// lookup operation, including vivification of unrecognised AIs.
//
// This mirrors ai.c and gs1_populateDLkeyQualifiers of dl.c in the GS1
// Barcode Syntax Engine: a Table is built once from a set of Entry
// definitions and thereafter used read-only during lookup.
package aitable

// Limits from the GS1 General Specifications, reproduced here as the spec
// requires: AI codes are 2 to 4 decimal digits, and a value is capped at
// MaxAIValueLen bytes.
const (
	MinAILen      = 2
	MaxAILen      = 4
	MaxAIValueLen = 90
)

// CharSet identifies one of the four GS1 component character sets.
type CharSet int

const (
	// CSetN is digits only.
	CSetN CharSet = iota
	// CSetX is CSET 82 (GS1 AI encodable character set 82).
	CSetX
	// CSetY is CSET 39 (upper-case letters, digits, space, '-' and '.').
	CSetY
	// CSetZ is CSET 64 (base64-url-like encodable character set).
	CSetZ
)

func (c CharSet) String() string {
	switch c {
	case CSetN:
		return "N"
	case CSetX:
		return "X"
	case CSetY:
		return "Y"
	case CSetZ:
		return "Z"
	default:
		return "?"
	}
}

// DataAttrClass classifies whether an AI may legally appear as a GS1
// Digital Link query-string attribute.
type DataAttrClass int

const (
	// DataAttrNone means the AI may never appear as a DL query attribute.
	DataAttrNone DataAttrClass = iota
	// DataAttrAllowed means the AI is always permitted as a DL attribute.
	DataAttrAllowed
	// DataAttrUnknownPlaceholder means the AI was vivified (unrecognised)
	// and is permitted as an attribute only while the
	// vUNKNOWN_AI_NOT_DL_ATTR validation toggle is disabled.
	DataAttrUnknownPlaceholder
)

// Component describes one ordered part of an AI's value.
type Component struct {
	CSet      CharSet
	Min       int
	Max       int
	Mandatory bool
	// Linters names extra, named linters run after the character-set
	// linter, in order. Unknown names are rejected at Compile time.
	Linters []string
}

// Entry is one immutable AI dictionary entry.
type Entry struct {
	AI              string
	FNC1Required    bool
	DLDataAttrClass DataAttrClass
	Components      []Component
	Attrs           Attrs
	// DataTitle is descriptive metadata only (HRI rendering is out of
	// scope); kept for error messages and debugging.
	DataTitle string

	// Synthetic is true for a vivified "unknown AI" entry returned by
	// Lookup when permitUnknownAIs is enabled and no table entry matches.
	Synthetic bool
}

// MinLength is the sum of the minimum lengths of mandatory components.
// Ported from aiEntryMinLength in ai.c.
func (e *Entry) MinLength() int {
	n := 0
	for _, c := range e.Components {
		if c.Mandatory {
			n += c.Min
		}
	}
	return n
}

// MaxLength is the sum of the maximum lengths of all components.
// Ported from aiEntryMaxLength in ai.c.
func (e *Entry) MaxLength() int {
	n := 0
	for _, c := range e.Components {
		n += c.Max
	}
	return n
}
