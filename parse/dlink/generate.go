package dlink

import (
	"sort"
	"strings"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
)

// defaultStem is used when a caller does not supply one.
const defaultStem = "https://id.gs1.org"

// Generate builds a GS1 Digital Link URI from the already-extracted AI
// table. stem is the custom URI stem to use in place of defaultStem;
// pass "" to use the default.
func Generate(tbl *aitable.Table, extracted *aidata.Table, stem string, opts Options) (string, error) {
	values := extracted.AIValues()

	primary, ok := firstPrimaryKey(tbl, values)
	if !ok {
		return "", gs1err.New(gs1err.ErrCannotCreateDLURIWithoutPrimaryKeyAI)
	}

	sequence := bestKeyQualifierSequence(tbl, primary.AI, values)

	pathOrder := make(map[string]int, len(sequence))
	for i, ai := range sequence {
		pathOrder[ai] = i
	}

	if stem == "" {
		stem = defaultStem
	}
	stem = strings.TrimSuffix(stem, "/")

	var b strings.Builder
	b.WriteString(stem)

	pathByOrder := make([]*aidata.Element, len(sequence))
	var attrs []aidata.Element
	seenAttr := make(map[string]bool)
	for i := range values {
		e := &values[i]
		if order, inPath := pathOrder[e.AI]; inPath {
			if pathByOrder[order] == nil {
				pathByOrder[order] = e
			}
			continue
		}
		if seenAttr[e.AI] {
			continue
		}
		seenAttr[e.AI] = true
		attrs = append(attrs, *e)
	}

	for _, e := range pathByOrder {
		if e == nil {
			continue
		}
		b.WriteByte('/')
		b.WriteString(e.AI)
		b.WriteByte('/')
		b.WriteString(percentEscapePath(e.Value(extracted.Buffer)))
	}

	sort.SliceStable(attrs, func(i, j int) bool {
		iFixed, jFixed := isFixedLength(attrs[i].AIEntry), isFixedLength(attrs[j].AIEntry)
		if iFixed != jFixed {
			return iFixed
		}
		return false
	})

	for _, e := range attrs {
		if e.AIEntry.DLDataAttrClass == aitable.DataAttrAllowed {
			continue
		}
		if e.AIEntry.DLDataAttrClass == aitable.DataAttrUnknownPlaceholder && opts.AllowUnknownAIAsDLAttr {
			continue
		}
		return "", gs1err.NewAI(gs1err.ErrAIIsNotValidDataAttribute, e.AI)
	}

	if len(attrs) > 0 {
		b.WriteByte('?')
		for i, e := range attrs {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(e.AI)
			b.WriteByte('=')
			b.WriteString(percentEscapeQuery(e.Value(extracted.Buffer)))
		}
	}

	return b.String(), nil
}

func isFixedLength(e *aitable.Entry) bool {
	return !e.FNC1Required
}

func firstPrimaryKey(tbl *aitable.Table, values []aidata.Element) (*aidata.Element, bool) {
	for i := range values {
		if tbl.IsDLPrimaryKey(values[i].AI) {
			return &values[i], true
		}
	}
	return nil, false
}

// bestKeyQualifierSequence chooses, among every key-qualifier sequence
// starting with primaryAI, the one that maximizes the count of other
// extracted AIs matching a qualifier in that sequence, breaking ties by
// lexicographic order of the candidate sequences.
func bestKeyQualifierSequence(tbl *aitable.Table, primaryAI string, values []aidata.Element) []string {
	candidates := tbl.KeyQualifierSequences(primaryAI)
	if len(candidates) == 0 {
		return []string{primaryAI}
	}

	present := make(map[string]bool, len(values))
	for _, e := range values {
		present[e.AI] = true
	}

	best := candidates[0]
	bestScore := -1
	for _, seq := range candidates {
		fields := strings.Split(seq, " ")
		score := 0
		for _, ai := range fields[1:] {
			if present[ai] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = seq
		}
	}
	return strings.Split(best, " ")
}
