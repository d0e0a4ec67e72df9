package lint

import "fmt"

// Func is a named linter: a pure function over a component's already
// character-set-validated value, returning a descriptive error if the
// value fails some additional, AI-specific constraint.
type Func func(value string) error

var registry = map[string]Func{
	"csum":    lintChecksum,
	"yymmdd":  lintYYMMDD,
	"yymm":    lintYYMM,
	"iso3166": lintISO3166,
	"hhmi":    lintHHMI,
	"nonzero": lintNonZero,
	"pcenc":   lintPercentEncodable,
}

// IsRegisteredName reports whether name identifies a known linter. Passed
// to aitable.Compile as its validLinterName callback, so an AI table that
// references an unrecognised linter is rejected at compile time rather
// than silently ignored.
func IsRegisteredName(name string) bool {
	_, ok := registry[name]
	return ok
}

// Lookup returns the named linter function, or false if name is not
// registered.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Register adds or replaces a named linter. Intended for callers
// assembling a custom AI table from Syntax-Dictionary-derived or
// organisation-specific linter sets; the builtin names above are always
// present unless explicitly overwritten.
func Register(name string, f Func) {
	registry[name] = f
}

// UnknownLinterError reports a reference to an unregistered linter name.
type UnknownLinterError struct {
	Name string
}

func (e *UnknownLinterError) Error() string {
	return fmt.Sprintf("lint: unrecognised linter %q", e.Name)
}
