// Package lint implements the per-component linter pipeline: the
// character-set checks (CSET-N/X/Y/Z) every component runs first, and the
// registry of named extra linters (checksum digits, date validity, ISO
// country codes, and so on) that a component may additionally require.
//
// Grounded on the per-character validation loops in gs1_processAIdata and
// the named linter functions declared in lint.h of the GS1 Barcode Syntax
// Engine, reworked here as a name -> func(string) error registry rather
// than a fixed C switch statement.
package lint

import (
	"fmt"

	"github.com/gs1ai/gs1ai/aitable"
)

// CharSetError reports that a byte at a given offset is not a member of the
// component's required character set.
type CharSetError struct {
	CharSet aitable.CharSet
	Offset  int
	Byte    byte
}

func (e *CharSetError) Error() string {
	return fmt.Sprintf("byte %q at offset %d is not in character set %s", e.Byte, e.Offset, e.CharSet)
}

// cset82 is GS1 AI encodable character set 82: digits, upper- and
// lower-case letters, and the symbols !"%&'()*+,-./:;<=>?_
var cset82 = buildCharSet("!\"%&'()*+,-./0123456789:;<=>?ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz")

// cset39 is GS1 character set 39: digits, upper-case letters, space, '-'
// and '.' — the printable repertoire of Code 39 symbology.
var cset39 = buildCharSet("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ -.")

// cset64 is the base64url alphabet used by CSET 64 components (AI 8030
// digital signatures and similar).
var cset64 = buildCharSet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")

func buildCharSet(alphabet string) [256]bool {
	var set [256]bool
	for i := 0; i < len(alphabet); i++ {
		set[alphabet[i]] = true
	}
	return set
}

// CheckCharSet validates that every byte of s belongs to cs, returning a
// *CharSetError identifying the first offending byte.
func CheckCharSet(cs aitable.CharSet, s string) error {
	switch cs {
	case aitable.CSetN:
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return &CharSetError{CharSet: cs, Offset: i, Byte: s[i]}
			}
		}
	case aitable.CSetX:
		for i := 0; i < len(s); i++ {
			if !cset82[s[i]] {
				return &CharSetError{CharSet: cs, Offset: i, Byte: s[i]}
			}
		}
	case aitable.CSetY:
		for i := 0; i < len(s); i++ {
			if !cset39[s[i]] {
				return &CharSetError{CharSet: cs, Offset: i, Byte: s[i]}
			}
		}
	case aitable.CSetZ:
		for i := 0; i < len(s); i++ {
			if !cset64[s[i]] {
				return &CharSetError{CharSet: cs, Offset: i, Byte: s[i]}
			}
		}
	}
	return nil
}
