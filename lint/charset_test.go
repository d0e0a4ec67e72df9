package lint

import (
	"testing"

	"github.com/gs1ai/gs1ai/aitable"
)

func TestCheckCharSetN(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{"12345", false},
		{"123a5", true},
		{"", false},
	}
	for _, c := range cases {
		err := CheckCharSet(aitable.CSetN, c.value)
		if (err != nil) != c.wantErr {
			t.Errorf("CheckCharSet(N, %q) error = %v, wantErr %v", c.value, err, c.wantErr)
		}
	}
}

func TestCheckCharSetX(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{"ABCabc123", false},
		{"Hello, World!", false},
		{"bad#value", true},
		{"bad@value", true},
	}
	for _, c := range cases {
		err := CheckCharSet(aitable.CSetX, c.value)
		if (err != nil) != c.wantErr {
			t.Errorf("CheckCharSet(X, %q) error = %v, wantErr %v", c.value, err, c.wantErr)
		}
	}
}

func TestCheckCharSetYRejectsLowercase(t *testing.T) {
	if err := CheckCharSet(aitable.CSetY, "ABC-123"); err != nil {
		t.Errorf("unexpected error for valid CSET 39 value: %v", err)
	}
	if err := CheckCharSet(aitable.CSetY, "abc"); err == nil {
		t.Error("expected error for lowercase in CSET 39")
	}
}

func TestCheckCharSetZRejectsNonBase64URL(t *testing.T) {
	if err := CheckCharSet(aitable.CSetZ, "QUJD-_09"); err != nil {
		t.Errorf("unexpected error for valid CSET 64 value: %v", err)
	}
	if err := CheckCharSet(aitable.CSetZ, "has a space"); err == nil {
		t.Error("expected error for space in CSET 64")
	}
}

func TestCharSetErrorIdentifiesOffset(t *testing.T) {
	err := CheckCharSet(aitable.CSetN, "12a45")
	cse, ok := err.(*CharSetError)
	if !ok {
		t.Fatalf("got %T, want *CharSetError", err)
	}
	if cse.Offset != 2 {
		t.Errorf("Offset = %d, want 2", cse.Offset)
	}
}
