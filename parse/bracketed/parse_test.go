package bracketed

import (
	"errors"
	"testing"

	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
)

func testTable(t *testing.T) *aitable.Table {
	t.Helper()
	tbl, err := aitable.Compile(aitable.DefaultEntries, func(string) bool { return true })
	if err != nil {
		t.Fatalf("aitable.Compile failed: %v", err)
	}
	return tbl
}

func TestParseSingleFixedAI(t *testing.T) {
	tbl := testTable(t)
	out, err := Parse(tbl, "(01)12345678901231")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("got %d elements, want 1", out.Len())
	}
	e := out.At(0)
	if e.AI != "01" || e.Value(out.Buffer) != "12345678901231" {
		t.Errorf("element = %+v", e)
	}
}

func TestParseTwoAIsFixedThenVariable(t *testing.T) {
	tbl := testTable(t)
	out, err := Parse(tbl, "(01)12345678901231(10)12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Buffer.String() != "^01123456789012311012345" {
		t.Errorf("normalized buffer = %q", out.Buffer.String())
	}
}

func TestParseUnmatchedParen(t *testing.T) {
	tbl := testTable(t)
	_, err := Parse(tbl, "(01)12345678901231(10)12345")
	if err != nil {
		t.Fatalf("sanity case unexpectedly failed: %v", err)
	}
	_, err = Parse(tbl, "(01)12345678901231(10")
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIParseFailed)) {
		t.Fatalf("got %v, want ErrAIParseFailed", err)
	}
}

func TestParseMissingOpenParen(t *testing.T) {
	tbl := testTable(t)
	_, err := Parse(tbl, "01)12345678901231")
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIParseFailed)) {
		t.Fatalf("got %v, want ErrAIParseFailed", err)
	}
}

func TestParseUnrecognisedAI(t *testing.T) {
	tbl := testTable(t)
	_, err := Parse(tbl, "(99999)foo")
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIUnrecognised)) {
		t.Fatalf("got %v, want ErrAIUnrecognised", err)
	}
}

func TestParseEscapedParen(t *testing.T) {
	tbl := testTable(t)
	out, err := Parse(tbl, `(10)AB\(CD`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := out.At(0)
	if e.Value(out.Buffer) != "AB(CD" {
		t.Errorf("value = %q, want %q", e.Value(out.Buffer), "AB(CD")
	}
}

func TestParseRejectsEmbeddedCarat(t *testing.T) {
	tbl := testTable(t)
	_, err := Parse(tbl, "(10)AB^CD")
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIContainsIllegalCaratCharacter)) {
		t.Fatalf("got %v, want ErrAIContainsIllegalCaratCharacter", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tbl := testTable(t)
	_, err := Parse(tbl, "")
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIParseFailed)) {
		t.Fatalf("got %v, want ErrAIParseFailed", err)
	}
}
