package validate

import (
	"errors"
	"testing"

	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
	"github.com/gs1ai/gs1ai/parse/bracketed"
)

func digsigTestTable(t *testing.T) *aitable.Table {
	t.Helper()
	entries := []aitable.Entry{
		{AI: "8030", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "DIGITAL SIGNATURE",
			Components: []aitable.Component{{CSet: aitable.CSetZ, Min: 1, Max: 500, Mandatory: true}}},
		{AI: "253", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "GDTI",
			Components: []aitable.Component{
				{CSet: aitable.CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}},
				{CSet: aitable.CSetX, Min: 1, Max: 17, Mandatory: false},
			}},
	}
	tbl, err := aitable.Compile(entries, func(string) bool { return true })
	if err != nil {
		t.Fatalf("aitable.Compile failed: %v", err)
	}
	return tbl
}

func TestValidateDigSigSerialRequiresSerialWhenSignaturePresent(t *testing.T) {
	tbl := digsigTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(8030)abcDEF123(253)9526064000028")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err = NewRegistry().Run(extracted)
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrSerialNotPresent)) {
		t.Fatalf("got %v, want ErrSerialNotPresent", err)
	}
}

func TestValidateDigSigSerialPassesWithSerial(t *testing.T) {
	tbl := digsigTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(8030)abcDEF123(253)9526064000028000001")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := NewRegistry().Run(extracted); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateDigSigSerialSkippedWithoutSignature(t *testing.T) {
	tbl := digsigTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(253)9526064000028")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := NewRegistry().Run(extracted); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
