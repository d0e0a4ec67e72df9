// Package aidata holds the extracted-AI table: the data structure shared
// between every parser (bracketed, unbracketed, DL URI) and read by the DL
// URI generator and the cross-AI validators, plus the single owned
// normalized buffer its elements point into.
//
// Grounded on the ctx->aiData array and linear data buffer of the GS1
// Barcode Syntax Engine's internal gs1_encoder context (dl.c,
// enc-private.h), reworked as an
// explicit, table-owned, fixed-capacity slice of offset/length elements
// into one owned []byte rather than a set of struct fields mutated in
// place on a long-lived encoder object.
package aidata

import "github.com/gs1ai/gs1ai/aitable"

// Kind distinguishes a real extracted AI from a verbatim-kept non-AI query
// parameter captured while parsing a GS1 Digital Link URI.
type Kind int

const (
	// KindAIValue is a real AI/value pair.
	KindAIValue Kind = iota
	// KindDLIgnored is a DL URI query-string parameter that is not a
	// registered AI's numeric code — kept verbatim so a caller can recover
	// it later (gs1ai.Result.IgnoredQueryParams).
	KindDLIgnored
)

// Attribute is the dl_path_order sentinel meaning "this AI appears as a
// query-string attribute, not as part of the DL path".
const Attribute = -1

// Element is one entry of the extracted-AI table: an offset/length pair
// into the shared normalized Buffer, plus enough metadata to answer every
// question the generator and validators ask without re-parsing.
type Element struct {
	Kind Kind

	// AI is the numeric AI code text (empty for KindDLIgnored).
	AI string

	// AIEntry is a back-pointer to the AI dictionary entry this element
	// was resolved against; nil for KindDLIgnored.
	AIEntry *aitable.Entry

	// ValueOffset and ValueLength locate this element's decoded value
	// inside the owning Buffer's data.
	ValueOffset int
	ValueLength int

	// RawQueryText holds the undecoded "key=value" (or bare "key") text
	// as it appeared in a DL URI query string, for KindDLIgnored elements
	// only — they are never appended to the normalized buffer.
	RawQueryText string

	// DLPathOrder is Attribute, or this element's 0-based position within
	// the chosen DL path sequence.
	DLPathOrder int
}

// Value returns this element's decoded value text, read from buf.
func (e *Element) Value(buf *Buffer) string {
	return buf.Slice(e.ValueOffset, e.ValueLength)
}
