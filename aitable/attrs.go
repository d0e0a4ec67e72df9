package aitable

import "strings"

// Attrs is the pre-compiled structured form of an AI entry's space-separated
// attrs string, parsed once at Compile time; the C encoder re-tokenizes the
// raw string on every validator call.
type Attrs struct {
	// Raw is the original, unparsed attrs string (kept for diagnostics).
	Raw string

	// DLPKey is true if this AI is a DL primary key with no qualifiers
	// ("dlpkey" token, with no "=").
	DLPKey bool

	// DLPKeyQualifierGroups holds one []string per "|"-separated
	// alternative in a "dlpkey=Q1,Q2,...|R1,R2,..." token. Each group is
	// the comma-separated qualifier sequence in order.
	DLPKeyQualifierGroups [][]string

	// Mutex holds the "ex=A,B,..." mutual-exclusion AI-prefix list.
	Mutex []string

	// Requisites holds one []string per comma-separated group in
	// "req=G1,G2,...". Each group element is itself split on "+" into the
	// AI prefixes that must all be present to satisfy that group.
	Requisites [][][]byte
}

// parseAttrs tokenizes an AI entry's attrs string into its structured form.
func parseAttrs(raw string) Attrs {
	a := Attrs{Raw: raw}
	for _, tok := range strings.Fields(raw) {
		switch {
		case tok == "dlpkey":
			a.DLPKey = true
		case strings.HasPrefix(tok, "dlpkey="):
			for _, grp := range strings.Split(tok[len("dlpkey="):], "|") {
				if grp == "" {
					a.DLPKeyQualifierGroups = append(a.DLPKeyQualifierGroups, nil)
					continue
				}
				a.DLPKeyQualifierGroups = append(a.DLPKeyQualifierGroups, strings.Split(grp, ","))
			}
		case strings.HasPrefix(tok, "ex="):
			for _, ai := range strings.Split(tok[len("ex="):], ",") {
				if ai != "" {
					a.Mutex = append(a.Mutex, ai)
				}
			}
		case strings.HasPrefix(tok, "req="):
			for _, grp := range strings.Split(tok[len("req="):], ",") {
				var elems [][]byte
				// A pathological attribute string with adjacent
				// separators (e.g. "req=01++21") yields an empty "+"
				// member; we
				// treat an empty group as automatically satisfied, so
				// we simply drop empty members rather than requiring
				// an AI whose prefix is "".
				for _, ai := range strings.Split(grp, "+") {
					if ai != "" {
						elems = append(elems, []byte(ai))
					}
				}
				a.Requisites = append(a.Requisites, elems)
			}
		}
		// Unrecognised tokens are ignored; the attrs grammar is
		// open-ended for future GS1 extensions and unknown tokens carry
		// no semantics the engine needs to act on.
	}
	return a
}

// RequisiteStrings reconstructs the "G1,G2,..." display form of the
// requisites for use in REQUIRED_AIS_NOT_SATISFIED error messages.
func (a Attrs) RequisiteStrings() []string {
	out := make([]string, 0, len(a.Requisites))
	for _, grp := range a.Requisites {
		parts := make([]string, 0, len(grp))
		for _, ai := range grp {
			parts = append(parts, string(ai))
		}
		out = append(out, strings.Join(parts, "+"))
	}
	return out
}
