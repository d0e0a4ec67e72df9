package aidata

import "errors"

// MaxAIs is the fixed maximum number of extracted elements a single parse
// may produce. It mirrors the Syntax Engine's compile-time limit on its
// context's aiData array; a parse that would exceed it fails outright
// rather than growing unbounded.
const MaxAIs = 64

// ErrTooManyAIs is returned by Table.Add once the table already holds
// MaxAIs elements.
var ErrTooManyAIs = errors.New("aidata: too many AIs extracted (TOO_MANY_AIS)")

// Table is the extracted-AI table: the ordered, fixed-capacity list of
// Elements a parser fills and the generator/validators read back.
type Table struct {
	Buffer   *Buffer
	elements []Element
}

// NewTable returns an empty Table backed by buf.
func NewTable(buf *Buffer) *Table {
	return &Table{Buffer: buf, elements: make([]Element, 0, MaxAIs)}
}

// Add appends el to the table, failing with ErrTooManyAIs once the table
// is at capacity.
func (t *Table) Add(el Element) error {
	if len(t.elements) >= MaxAIs {
		return ErrTooManyAIs
	}
	t.elements = append(t.elements, el)
	return nil
}

// Len returns the number of extracted elements.
func (t *Table) Len() int { return len(t.elements) }

// At returns the element at index i.
func (t *Table) At(i int) *Element { return &t.elements[i] }

// All returns every extracted element, in extraction order.
func (t *Table) All() []Element { return t.elements }

// AIValues returns every KindAIValue element, in extraction order.
func (t *Table) AIValues() []Element {
	out := make([]Element, 0, len(t.elements))
	for _, e := range t.elements {
		if e.Kind == KindAIValue {
			out = append(out, e)
		}
	}
	return out
}

// DLIgnored returns every KindDLIgnored element's raw query text, in
// extraction order — the backing data for
// gs1ai.Result.IgnoredQueryParams.
func (t *Table) DLIgnored() []string {
	var out []string
	for _, e := range t.elements {
		if e.Kind == KindDLIgnored {
			out = append(out, e.RawQueryText)
		}
	}
	return out
}

// Find returns the first KindAIValue element with the given AI code, if
// any.
func (t *Table) Find(ai string) (*Element, bool) {
	for i := range t.elements {
		if t.elements[i].Kind == KindAIValue && t.elements[i].AI == ai {
			return &t.elements[i], true
		}
	}
	return nil, false
}

// PathElements returns every element with DLPathOrder != Attribute,
// sorted by DLPathOrder.
func (t *Table) PathElements() []Element {
	var out []Element
	for _, e := range t.elements {
		if e.Kind == KindAIValue && e.DLPathOrder != Attribute {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].DLPathOrder > out[j].DLPathOrder; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
