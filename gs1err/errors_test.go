package gs1err

import (
	"errors"
	"testing"
)

func TestErrorMessageFormats(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"bare", New(ErrTooManyAIs), "TOO_MANY_AIS"},
		{"with AI", NewAI(ErrAIUnrecognised, "99"), "AI_UNRECOGNISED: AI (99)"},
		{"with detail", NewDetail(ErrRequiredAIsNotSatisfied, "01", "10+21"), "REQUIRED_AIS_NOT_SATISFIED: AI (01): 10+21"},
		{"pair", NewAIPair(ErrInvalidAIPairs, "01", "02"), "INVALID_AI_PAIRS: AI (01) and (02)"},
		{"linter", NewLinter("17", "yymmdd", "(17)12|a|456"), "AI_LINTER_ERROR: yymmdd: (17)12|a|456"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestErrorsIsBySentinel(t *testing.T) {
	err := NewAI(ErrAIUnrecognised, "99")
	if !errors.Is(err, Sentinel(ErrAIUnrecognised)) {
		t.Error("errors.Is against Sentinel(same code) = false, want true")
	}
	if errors.Is(err, Sentinel(ErrTooManyAIs)) {
		t.Error("errors.Is against Sentinel(different code) = true, want false")
	}
}

func TestErrorsIsByOtherError(t *testing.T) {
	a := NewAI(ErrDuplicateAI, "01")
	b := New(ErrDuplicateAI)
	if !errors.Is(a, b) {
		t.Error("errors.Is(a, b) = false, want true for matching codes regardless of other fields")
	}
}

func TestErrorCodeStringUnknown(t *testing.T) {
	var c ErrorCode = 9999
	if got := c.String(); got != "ErrorCode(9999)" {
		t.Errorf("String() = %q", got)
	}
}
