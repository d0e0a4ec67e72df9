package aitable

import (
	"fmt"
	"sort"
	"strings"
)

// Table is the compiled, immutable AI dictionary plus its derived indices:
// the AI-length-by-prefix table and the sorted key-qualifier sequence set.
// A Table is safe for concurrent read-only use by multiple Contexts; it is
// never mutated after Compile returns.
type Table struct {
	entries []Entry // sorted by AI code

	lengthByPrefix [100]uint8 // AI code length (2-4), 0 = prefix unused

	// keyQualifiers is the sorted list of space-joined AI sequences
	// derived from every "dlpkey"/"dlpkey=..." attribute.
	keyQualifiers []string
}

// TableError reports a problem found while compiling an AI table, mirroring
// AI_TABLE_BROKEN_PREFIXES_DIFFER_IN_LENGTH and friends from ai.c.
type TableError struct {
	Message string
}

func (e *TableError) Error() string { return e.Message }

// Compile builds a Table from a set of entries, validating the
// same-length-per-prefix invariant and pre-compiling the derived
// key-qualifier sequence set. Entries need not be pre-sorted.
//
// Unknown linter names referenced by any component are rejected here via
// validLinterName: a dictionary naming a linter this build does not carry
// is broken, not partially usable.
func Compile(entries []Entry, validLinterName func(string) bool) (*Table, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AI < sorted[j].AI })

	for i := range sorted {
		sorted[i].Attrs = parseAttrs(sorted[i].Attrs.Raw)
		for _, ai := range sorted[i].AI {
			if ai < '0' || ai > '9' {
				return nil, &TableError{Message: fmt.Sprintf("AI %q is not digit-only", sorted[i].AI)}
			}
		}
		if len(sorted[i].AI) < MinAILen || len(sorted[i].AI) > MaxAILen {
			return nil, &TableError{Message: fmt.Sprintf("AI %q has illegal length", sorted[i].AI)}
		}
		for _, c := range sorted[i].Components {
			for _, name := range c.Linters {
				if validLinterName != nil && !validLinterName(name) {
					return nil, &TableError{Message: fmt.Sprintf("AI %q: unknown linter %q", sorted[i].AI, name)}
				}
			}
		}
	}

	var lengthByPrefix [100]uint8
	for i := range sorted {
		if len(sorted[i].AI) < 2 {
			continue
		}
		idx := prefixIndex(sorted[i].AI)
		l := uint8(len(sorted[i].AI))
		if lengthByPrefix[idx] != 0 && lengthByPrefix[idx] != l {
			return nil, &TableError{Message: fmt.Sprintf(
				"AI_TABLE_BROKEN_PREFIXES_DIFFER_IN_LENGTH: prefix %q", sorted[i].AI[:2])}
		}
		lengthByPrefix[idx] = l
	}

	kq, err := buildKeyQualifiers(sorted)
	if err != nil {
		return nil, err
	}

	return &Table{entries: sorted, lengthByPrefix: lengthByPrefix, keyQualifiers: kq}, nil
}

// buildKeyQualifiers derives the sorted key-qualifier sequence set from
// every entry's dlpkey/dlpkey= attributes, as
// addDLkeyQualifiers/gs1_populateDLkeyQualifiers do in dl.c: for dlpkey, add
// "AI"; for each dlpkey=Q1,Q2,...,Qn group, add every prefix "AI",
// "AI Q1", "AI Q1 Q2", ....
func buildKeyQualifiers(entries []Entry) ([]string, error) {
	var out []string
	for _, e := range entries {
		if e.Attrs.DLPKey {
			out = append(out, e.AI)
		}
		for _, qualifiers := range e.Attrs.DLPKeyQualifierGroups {
			seq := e.AI
			out = append(out, seq)
			for _, q := range qualifiers {
				seq = seq + " " + q
				out = append(out, seq)
			}
		}
	}
	sort.Strings(out)
	// De-duplicate adjacent equal sequences (e.g. two entries both
	// contributing the bare primary-key sequence).
	deduped := out[:0]
	for i, s := range out {
		if i == 0 || s != deduped[len(deduped)-1] {
			deduped = append(deduped, s)
		}
	}
	return deduped, nil
}

// prefixCmp replicates strncmp(entry.AI, query, len(entry.AI)) from ai.c's
// gs1_lookupAIentry: it compares only the first len(entry.AI) bytes, and
// treats missing bytes of query (when query is shorter than entry.AI) as
// the lowest possible byte value, matching strncmp's null-terminator
// behaviour on C strings.
func prefixCmp(entryAI, query string) int {
	n := len(entryAI)
	for i := 0; i < n; i++ {
		var b byte
		if i < len(query) {
			b = query[i]
		}
		a := entryAI[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Lookup finds an AI table entry matching ai, exactly as gs1_lookupAIentry
// in ai.c:
//
//   - queryLen == 0 means "find the entry whose AI is the longest matching
//     prefix of ai" (ai is the remaining input, not just the AI itself).
//   - queryLen != 0 means "find the entry of exactly that AI length".
//
// Only numeric queries are considered. When no entry matches and
// permitUnknown is set, a synthetic entry is vivified —
// unless doing so would shadow a real AI (ai is a true prefix of a known
// AI) or would require unknown-AI-length splitting (queryLen == 0 and the
// prefix's AI length is itself undefined).
func (t *Table) Lookup(ai string, queryLen int, permitUnknown bool) (*Entry, bool) {
	if queryLen != 0 && (queryLen < MinAILen || queryLen > MaxAILen) {
		return nil, false
	}

	checkLen := queryLen
	if checkLen == 0 {
		checkLen = MinAILen
	}
	if len(ai) < checkLen || !allDigits(ai[:checkLen]) {
		return nil, false
	}

	lo, hi := 0, len(t.entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		entry := &t.entries[mid]
		entryLen := len(entry.AI)
		cmp := prefixCmp(entry.AI, ai)
		if cmp == 0 {
			if queryLen != 0 && entryLen != queryLen {
				return nil, false // prefix match, but incorrect length
			}
			return entry, true
		}
		if queryLen != 0 && strings.HasPrefix(entry.AI, ai[:queryLen]) {
			return nil, false // don't vivify an AI that is a prefix of a known AI
		}
		if cmp < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if !permitUnknown {
		return nil, false
	}

	aiLenByPrefix := int(t.lengthByPrefix[prefixIndex(ai)])
	if queryLen != 0 && aiLenByPrefix != 0 && aiLenByPrefix != queryLen {
		return nil, false
	}
	if aiLenByPrefix != 0 && (len(ai) < aiLenByPrefix || !allDigits(ai[:aiLenByPrefix])) {
		return nil, false
	}

	valLen := valLengthByPrefix(ai)
	e := vivify(aiLenByPrefix, valLen)
	return &e, true
}

// IsDLPrimaryKey reports whether ai (alone, with no qualifiers) is a
// registered DL primary key, i.e. the singleton sequence "ai" is present
// in the key-qualifier set.
func (t *Table) IsDLPrimaryKey(ai string) bool {
	return t.HasKeyQualifierSequence([]string{ai})
}

// HasKeyQualifierSequence reports whether the space-joined AI sequence is a
// member of the derived key-qualifier set (getDLpathAIseqEntry in dl.c).
func (t *Table) HasKeyQualifierSequence(seq []string) bool {
	_, ok := t.keyQualifierIndex(seq)
	return ok
}

func (t *Table) keyQualifierIndex(seq []string) (int, bool) {
	joined := strings.Join(seq, " ")
	lo, hi := 0, len(t.keyQualifiers)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch strings.Compare(t.keyQualifiers[mid], joined) {
		case 0:
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1, false
}

// KeyQualifierSequences returns every valid key-qualifier sequence whose
// first element is key, in sorted order (used by the DL URI generator to
// select the best-matching path sequence).
func (t *Table) KeyQualifierSequences(key string) []string {
	var out []string
	for _, s := range t.keyQualifiers {
		fields := strings.SplitN(s, " ", 2)
		if fields[0] == key {
			out = append(out, s)
		}
	}
	return out
}
