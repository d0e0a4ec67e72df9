package validate

import (
	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/gs1err"
)

// digSigSerialKeys lists the AIs that carry an optional serial component
// whose presence becomes mandatory once AI 8030 (a digital signature) is
// also present.
var digSigSerialKeys = []string{"253", "255", "8003"}

// validateDigSigSerial implements vDIGSIG_SERIAL_KEY, grounded on the
// serial-component check applied alongside AI 8030 in dl.c: a digital
// signature authenticates a specific serialised instance, so any of
// AI 253/255/8003 present alongside it must carry its optional serial
// suffix, not just the mandatory GDTI/SSCC-family prefix.
func validateDigSigSerial(extracted *aidata.Table) error {
	hasDigSig := false
	for _, e := range extracted.AIValues() {
		if e.AI == "8030" {
			hasDigSig = true
			break
		}
	}
	if !hasDigSig {
		return nil
	}

	for _, e := range extracted.AIValues() {
		if !isDigSigSerialKey(e.AI) {
			continue
		}
		if e.ValueLength <= e.AIEntry.MinLength() {
			return gs1err.NewAI(gs1err.ErrSerialNotPresent, e.AI)
		}
	}
	return nil
}

func isDigSigSerialKey(ai string) bool {
	for _, k := range digSigSerialKeys {
		if k == ai {
			return true
		}
	}
	return false
}
