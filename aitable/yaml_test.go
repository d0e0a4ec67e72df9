package aitable

import (
	"strings"
	"testing"
)

const sampleYAML = `
entries:
  - ai: "01"
    fnc1required: false
    dlDataAttr: allowed
    attrs: "dlpkey ex=02"
    title: GTIN
    components:
      - cset: N
        min: 14
        max: 14
        mandatory: true
        linters: ["csum"]
  - ai: "10"
    fnc1required: true
    title: BATCH/LOT
    components:
      - cset: X
        min: 1
        max: 20
        mandatory: true
`

func TestParseYAML(t *testing.T) {
	tbl, err := ParseYAML(strings.NewReader(sampleYAML), permitAllLinters)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	e, ok := tbl.Lookup("01", 2, false)
	if !ok {
		t.Fatal("Lookup(01) not found after ParseYAML")
	}
	if e.DataTitle != "GTIN" {
		t.Errorf("DataTitle = %q, want GTIN", e.DataTitle)
	}
	if !e.Attrs.DLPKey {
		t.Error("expected DLPKey = true for AI 01")
	}
	if e.Components[0].CSet != CSetN {
		t.Errorf("CSet = %v, want CSetN", e.Components[0].CSet)
	}
}

func TestParseYAMLRejectsUnknownCSet(t *testing.T) {
	doc := `
entries:
  - ai: "01"
    components:
      - cset: Q
        min: 1
        max: 1
        mandatory: true
`
	if _, err := ParseYAML(strings.NewReader(doc), permitAllLinters); err == nil {
		t.Fatal("expected error for unrecognised cset, got nil")
	}
}

func TestParseYAMLRejectsUnknownField(t *testing.T) {
	doc := `
entries:
  - ai: "01"
    bogusField: true
    components: []
`
	if _, err := ParseYAML(strings.NewReader(doc), permitAllLinters); err == nil {
		t.Fatal("expected error for unknown field (KnownFields), got nil")
	}
}
