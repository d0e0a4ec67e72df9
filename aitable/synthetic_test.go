package aitable

import "testing"

func TestVivifyKnownFixedLength(t *testing.T) {
	e := vivify(2, 18)
	if !e.Synthetic {
		t.Error("expected Synthetic entry")
	}
	if e.Components[0].Min != 18 || e.Components[0].Max != 18 {
		t.Errorf("component length = [%d,%d], want [18,18]", e.Components[0].Min, e.Components[0].Max)
	}
	if e.FNC1Required {
		t.Error("fixed-length vivified AI should not require FNC1")
	}
}

func TestVivifyVariableLength(t *testing.T) {
	e := vivify(3, variableLength)
	if !e.Synthetic {
		t.Error("expected Synthetic entry")
	}
	if !e.FNC1Required {
		t.Error("variable-length vivified AI should require FNC1")
	}
	if e.Components[0].Max != MaxAIValueLen {
		t.Errorf("component max = %d, want %d", e.Components[0].Max, MaxAIValueLen)
	}
}

func TestVivifyUnknownAILength(t *testing.T) {
	e := vivify(0, variableLength)
	if e.AI != "" {
		t.Errorf("generic UNK entry AI = %q, want empty", e.AI)
	}
	if !e.Synthetic {
		t.Error("expected Synthetic entry")
	}
}

func TestValLengthByPrefixKnownAndUnknown(t *testing.T) {
	if got := valLengthByPrefix("11"); got != 6 {
		t.Errorf("valLengthByPrefix(11) = %d, want 6", got)
	}
	if got := valLengthByPrefix("99"); got != variableLength {
		t.Errorf("valLengthByPrefix(99) = %d, want variableLength", got)
	}
}
