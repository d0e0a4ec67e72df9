package gs1ai

import "testing"

func TestResultValueAndFindMissingAI(t *testing.T) {
	ctx := newTestContext(t)
	result, err := ctx.ParseAIData("(01)09520123456788")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.Value("99"); ok {
		t.Error("Value(99) should report not-found")
	}
	if _, ok := result.Find("99"); ok {
		t.Error("Find(99) should report not-found")
	}
}

func TestResultNormalized(t *testing.T) {
	ctx := newTestContext(t)
	result, err := ctx.ParseAIData("(01)09520123456788(10)ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "^010952012345678810ABC123"
	if got := result.Normalized(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
