package validate

import (
	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/gs1err"
)

// validateRepeats implements vREPEATED_AIS, grounded on
// validateAIrepeats in ai.c: the same AI may appear more than once in
// an input only if every occurrence carries an identical value.
func validateRepeats(extracted *aidata.Table) error {
	first := make(map[string]string)
	for _, e := range extracted.AIValues() {
		value := e.Value(extracted.Buffer)
		if seen, ok := first[e.AI]; ok {
			if seen != value {
				return gs1err.NewAI(gs1err.ErrInstancesOfAIHaveDifferentValues, e.AI)
			}
			continue
		}
		first[e.AI] = value
	}
	return nil
}
