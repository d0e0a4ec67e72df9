package validate

import (
	"github.com/coregx/ahocorasick"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/gs1err"
)

// validateMutex implements vMUTEX_AIS, grounded on validateAImutex in
// ai.c: an AI carrying a `Mutex` attribute lists the
// prefixes of other AIs it may never appear alongside. The prefix list is
// compiled into an Aho-Corasick automaton and matched against every other
// extracted AI's code; a match anchored at offset 0 is a prefix hit.
func validateMutex(extracted *aidata.Table) error {
	values := extracted.AIValues()
	for i := range values {
		e := values[i]
		if len(e.AIEntry.Attrs.Mutex) == 0 {
			continue
		}
		builder := ahocorasick.NewBuilder()
		for _, prefix := range e.AIEntry.Attrs.Mutex {
			builder.AddPattern([]byte(prefix))
		}
		automaton, err := builder.Build()
		if err != nil {
			return gs1err.New(gs1err.ErrInvalidAIPairs)
		}

		for j := range values {
			if j == i {
				continue
			}
			other := values[j]
			m := automaton.Find([]byte(other.AI), 0)
			if m != nil && m.Start == 0 {
				return gs1err.NewAIPair(gs1err.ErrInvalidAIPairs, e.AI, other.AI)
			}
		}
	}
	return nil
}
