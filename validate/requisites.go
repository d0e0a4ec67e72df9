package validate

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/gs1err"
)

// validateRequisites implements vREQUISITE_AIS, grounded on
// validateAIrequisites in ai.c: an AI carrying `Requisites`
// lists one or more groups of AI-prefix tokens, and at least one whole
// group must be satisfied by the other extracted AIs.
//
// Matching reuses the same Aho-Corasick automaton approach as the Mutex
// validator, built once per aival over the distinct token set across all
// of its groups. ahocorasick.Match exposes only Start/End (no pattern
// identity), so the satisfied token is recovered by slicing the haystack
// itself at a zero-offset match rather than assuming an unverified field.
// A single Find call returns only the leftmost match, so if two requisite
// tokens for the same aival were themselves prefixes of one another, only
// one could be detected per extracted AI per call; GS1's requisite lists
// are same-length AI-code prefixes in practice, so this does not bite.
func validateRequisites(extracted *aidata.Table) error {
	values := extracted.AIValues()
	for i := range values {
		e := values[i]
		groups := e.AIEntry.Attrs.Requisites
		if len(groups) == 0 {
			continue
		}

		tokens := distinctTokens(groups)
		if len(tokens) == 0 {
			continue
		}
		builder := ahocorasick.NewBuilder()
		for _, tok := range tokens {
			builder.AddPattern([]byte(tok))
		}
		automaton, err := builder.Build()
		if err != nil {
			return gs1err.NewDetail(gs1err.ErrRequiredAIsNotSatisfied, e.AI, strings.Join(e.AIEntry.Attrs.RequisiteStrings(), ","))
		}

		satisfied := make(map[string]bool)
		for j := range values {
			if j == i {
				continue
			}
			aiBytes := []byte(values[j].AI)
			if m := automaton.Find(aiBytes, 0); m != nil && m.Start == 0 {
				satisfied[string(aiBytes[:m.End])] = true
			}
		}

		if !anyGroupSatisfied(groups, satisfied) {
			return gs1err.NewDetail(gs1err.ErrRequiredAIsNotSatisfied, e.AI, strings.Join(e.AIEntry.Attrs.RequisiteStrings(), ","))
		}
	}
	return nil
}

func distinctTokens(groups [][][]byte) []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range groups {
		for _, tok := range group {
			s := string(tok)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func anyGroupSatisfied(groups [][][]byte, satisfied map[string]bool) bool {
	for _, group := range groups {
		allSatisfied := true
		for _, tok := range group {
			if len(tok) == 0 {
				continue // dropped empty member, auto-satisfied
			}
			if !satisfied[string(tok)] {
				allSatisfied = false
				break
			}
		}
		if allSatisfied {
			return true
		}
	}
	return false
}
