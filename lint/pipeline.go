package lint

import (
	"errors"
	"fmt"

	"github.com/gs1ai/gs1ai/aitable"
)

// ErrEmptyValue reports that an AI's entire value span is empty. It is
// checked before the per-component loop so an empty value is diagnosed as
// such rather than as the first mandatory component being too short.
var ErrEmptyValue = errors.New("lint: AI value is empty")

// LengthError reports that a mandatory component's remaining share of the
// value is shorter than the component demands.
type LengthError struct {
	ComponentIndex int
	Remaining      int
	Min            int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("component %d: remaining length %d is less than minimum %d",
		e.ComponentIndex, e.Remaining, e.Min)
}

// LinterError reports a character-set or named-linter failure within one
// component, carrying both the raw cause and the GS1 error-markup string.
type LinterError struct {
	ComponentIndex int
	LinterName     string // "" for the built-in character-set linter
	Cause          error
	Markup         string
}

func (e *LinterError) Error() string {
	if e.LinterName == "" {
		return fmt.Sprintf("component %d: character set check failed: %v (%s)", e.ComponentIndex, e.Cause, e.Markup)
	}
	return fmt.Sprintf("component %d: linter %q failed: %v (%s)", e.ComponentIndex, e.LinterName, e.Cause, e.Markup)
}

func (e *LinterError) Unwrap() error { return e.Cause }

// Run executes the per-component consumption loop against value,
// one AI's full value (after any bracketed/unbracketed framing has already
// been stripped). It returns the number of bytes consumed — normally
// len(value), but less when value is longer than the sum of the
// components' maximum lengths (a mismatch the caller reports) — or the
// first length or linter failure.
func Run(ai string, components []aitable.Component, value string) (consumed int, err error) {
	if len(value) == 0 {
		return 0, ErrEmptyValue
	}

	pos := 0
	for i, c := range components {
		remaining := len(value) - pos
		if !c.Mandatory && remaining == 0 {
			continue
		}
		if remaining < c.Min {
			return pos, &LengthError{ComponentIndex: i, Remaining: remaining, Min: c.Min}
		}

		take := c.Max
		if remaining < take {
			take = remaining
		}
		sub := value[pos : pos+take]

		if cerr := CheckCharSet(c.CSet, sub); cerr != nil {
			var off int
			if cse, ok := cerr.(*CharSetError); ok {
				off = cse.Offset
			}
			return pos, &LinterError{
				ComponentIndex: i,
				Cause:          cerr,
				Markup:         Markup(ai, value, pos+off, 1),
			}
		}

		for _, name := range c.Linters {
			f, ok := Lookup(name)
			if !ok {
				return pos, &LinterError{ComponentIndex: i, LinterName: name, Cause: &UnknownLinterError{Name: name}}
			}
			if lerr := f(sub); lerr != nil {
				return pos, &LinterError{
					ComponentIndex: i,
					LinterName:     name,
					Cause:          lerr,
					Markup:         Markup(ai, value, pos, take),
				}
			}
		}

		pos += take
	}
	return pos, nil
}
