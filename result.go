package gs1ai

import "github.com/gs1ai/gs1ai/aidata"

// Result is the outcome of a successful parse: the extracted AI table,
// already validated by the Context's cross-AI validator registry.
type Result struct {
	table *aidata.Table
}

// AIValues returns every extracted AI-value element, in extraction order.
func (r *Result) AIValues() []aidata.Element { return r.table.AIValues() }

// Find returns the first extracted element with the given AI code, if any.
func (r *Result) Find(ai string) (*aidata.Element, bool) { return r.table.Find(ai) }

// Value returns the decoded value of ai, if present.
func (r *Result) Value(ai string) (string, bool) {
	e, ok := r.table.Find(ai)
	if !ok {
		return "", false
	}
	return e.Value(r.table.Buffer), true
}

// IgnoredQueryParams returns the raw text of every non-AI query parameter
// a GS1 Digital Link URI parse encountered, mirroring dl.c's
// gs1_encoder_getDLignoredQueryParams.
func (r *Result) IgnoredQueryParams() []string { return r.table.DLIgnored() }

// Normalized returns the FNC1-delimited normalized AI-data buffer, as
// would be produced by re-encoding the extracted elements in unbracketed
// form.
func (r *Result) Normalized() string { return r.table.Buffer.String() }
