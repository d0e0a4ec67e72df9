package lint

import (
	"fmt"
	"strings"

	"github.com/gs1ai/gs1ai/aitable"
)

// ValueLengthError reports that an AI's whole value text falls outside the
// entry's aggregate [MinLength, MaxLength] bounds — the coarse check every
// parser runs before handing the value to the per-component pipeline.
// Grounded on gs1_aiValLengthContentCheck in ai.c.
type ValueLengthError struct {
	TooShort bool // false means too long
	Length   int
	Min      int
	Max      int
}

func (e *ValueLengthError) Error() string {
	if e.TooShort {
		return fmt.Sprintf("value length %d is less than minimum %d", e.Length, e.Min)
	}
	return fmt.Sprintf("value length %d exceeds maximum %d", e.Length, e.Max)
}

// CheckValueLength validates value's overall length against entry's
// aggregate component bounds, run before Run.
func CheckValueLength(entry *aitable.Entry, value string) error {
	min, max := entry.MinLength(), entry.MaxLength()
	if len(value) < min {
		return &ValueLengthError{TooShort: true, Length: len(value), Min: min, Max: max}
	}
	if len(value) > max {
		return &ValueLengthError{TooShort: false, Length: len(value), Min: min, Max: max}
	}
	return nil
}

// CaratError reports an illegal raw FNC1 ('^') byte found inside a value
// that is being framed by delimiters other than FNC1 itself (a bracketed
// value, or a percent-decoded DL path/query value) — ported in meaning
// from AI_CONTAINS_ILLEGAL_CARAT_CHARACTER in ai.c.
type CaratError struct {
	Offset int
}

func (e *CaratError) Error() string {
	return fmt.Sprintf("illegal '^' byte at offset %d", e.Offset)
}

// CheckNoCarat rejects a literal FNC1 byte anywhere in value.
func CheckNoCarat(value string) error {
	if i := strings.IndexByte(value, '^'); i >= 0 {
		return &CaratError{Offset: i}
	}
	return nil
}
