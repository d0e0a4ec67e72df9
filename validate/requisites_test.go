package validate

import (
	"errors"
	"testing"

	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
	"github.com/gs1ai/gs1ai/parse/bracketed"
)

func requisitesTestTable(t *testing.T) *aitable.Table {
	t.Helper()
	entries := []aitable.Entry{
		{AI: "95", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "NEEDS COMPANION",
			Components: []aitable.Component{{CSet: aitable.CSetX, Min: 1, Max: 10, Mandatory: true}},
			Attrs:      aitable.Attrs{Raw: "req=91,92+93"}},
		{AI: "91", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "ALT A",
			Components: []aitable.Component{{CSet: aitable.CSetX, Min: 1, Max: 10, Mandatory: true}}},
		{AI: "92", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "ALT B PART1",
			Components: []aitable.Component{{CSet: aitable.CSetX, Min: 1, Max: 10, Mandatory: true}}},
		{AI: "93", FNC1Required: true, DLDataAttrClass: aitable.DataAttrAllowed, DataTitle: "ALT B PART2",
			Components: []aitable.Component{{CSet: aitable.CSetX, Min: 1, Max: 10, Mandatory: true}}},
	}
	tbl, err := aitable.Compile(entries, func(string) bool { return true })
	if err != nil {
		t.Fatalf("aitable.Compile failed: %v", err)
	}
	return tbl
}

func TestValidateRequisitesSingleTokenGroupSatisfied(t *testing.T) {
	tbl := requisitesTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(95)FOO(91)BAR")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := NewRegistry().Run(extracted); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRequisitesNoGroupSatisfied(t *testing.T) {
	tbl := requisitesTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(95)FOO")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err = NewRegistry().Run(extracted)
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrRequiredAIsNotSatisfied)) {
		t.Fatalf("got %v, want ErrRequiredAIsNotSatisfied", err)
	}
}

func TestValidateRequisitesPartialMultiTokenGroupFails(t *testing.T) {
	tbl := requisitesTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(95)FOO(92)BAR")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err = NewRegistry().Run(extracted)
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrRequiredAIsNotSatisfied)) {
		t.Fatalf("got %v, want ErrRequiredAIsNotSatisfied", err)
	}
}

func TestValidateRequisitesFullMultiTokenGroupSatisfied(t *testing.T) {
	tbl := requisitesTestTable(t)
	extracted, err := bracketed.Parse(tbl, "(95)FOO(92)BAR(93)BAZ")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := NewRegistry().Run(extracted); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
