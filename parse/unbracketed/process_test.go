package unbracketed

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

func TestProcessRejectsMissingLeadingFNC1(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "01123456789012311012345", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrMissingFNC1InFirstPosition)) {
		t.Fatalf("got %v, want ErrMissingFNC1InFirstPosition", err)
	}
}

func TestProcessRejectsEmptyInput(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrMissingFNC1InFirstPosition)) {
		t.Fatalf("got %v, want ErrMissingFNC1InFirstPosition", err)
	}
}

func TestProcessRejectsBareFNC1(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "^", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIDataEmpty)) {
		t.Fatalf("got %v, want ErrAIDataEmpty", err)
	}
}

func TestProcessExtractsFixedThenVariable(t *testing.T) {
	tbl := testTable(t)
	out, err := Process(tbl, "^01123456789012311012345", true, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("got %d elements, want 2", out.Len())
	}
	e0 := out.At(0)
	if e0.AI != "01" || e0.Value(out.Buffer) != "12345678901231" {
		t.Errorf("element 0 = %+v", e0)
	}
	e1 := out.At(1)
	if e1.AI != "10" || e1.Value(out.Buffer) != "12345" {
		t.Errorf("element 1 = %+v", e1)
	}
	if out.Buffer.String() != "^01123456789012311012345" {
		t.Errorf("normalized buffer = %q", out.Buffer.String())
	}
}

func TestProcessTooLongFixedAIExtractTrue(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "^01123456789012312", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrNoAIForPrefix)) {
		t.Fatalf("got %v, want ErrNoAIForPrefix", err)
	}
}

func TestProcessTooLongFixedAIExtractFalse(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "^01123456789012312", false, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIDataIsTooLong)) {
		t.Fatalf("got %v, want ErrAIDataIsTooLong", err)
	}
}

func TestProcessEmptyAIValue(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "^10^21ABC", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrAIDataIsEmpty)) {
		t.Fatalf("got %v, want ErrAIDataIsEmpty", err)
	}
}

func TestProcessUnrecognisedAI(t *testing.T) {
	tbl := testTable(t)
	_, err := Process(tbl, "^78123456", true, Options{})
	if !errors.Is(err, gs1err.Sentinel(gs1err.ErrNoAIForPrefix)) {
		t.Fatalf("got %v, want ErrNoAIForPrefix", err)
	}
}

func TestProcessExtractFalseRunsLintOnly(t *testing.T) {
	tbl := testTable(t)
	out, err := Process(tbl, "^01123456789012311012345", false, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Errorf("extract=false should return nil table, got %v", out)
	}
}
