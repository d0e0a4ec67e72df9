package dlink

import (
	"strings"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
	"github.com/gs1ai/gs1ai/lint"
	"github.com/gs1ai/gs1ai/parse/unbracketed"
)

var schemes = []string{"http://", "https://", "HTTP://", "HTTPS://"}

// Parse parses a GS1 Digital Link URI against tbl.
func Parse(tbl *aitable.Table, uri string, opts Options) (*aidata.Table, error) {
	if err := checkURIChars(uri); err != nil {
		return nil, err
	}

	rest, err := stripScheme(uri)
	if err != nil {
		return nil, err
	}
	if rest == "" {
		return nil, gs1err.New(gs1err.ErrURIMissingDomainAndPathInfo)
	}

	domain, pathAndMore := splitDomain(rest)
	if domain == "" {
		return nil, gs1err.New(gs1err.ErrURIMissingDomainAndPathInfo)
	}
	if err := checkDomainChars(domain); err != nil {
		return nil, err
	}

	pathInfo, query := splitPathQueryFragment(pathAndMore)
	segments := splitPathSegments(pathInfo)

	root, ok := findDLRoot(tbl, segments)
	if !ok {
		return nil, gs1err.New(gs1err.ErrNoGS1DLKeysFoundInPathInfo)
	}

	out := aidata.NewTable(aidata.NewBuffer(len(uri) + len(uri)/4 + 1))
	first := true
	prevFNC1Required := false
	var pathAIs []string

	order := 0
	j := root
	for j+1 < len(segments) {
		aiCode := segments[j]
		entry, aiOK := tbl.Lookup(aiCode, len(aiCode), opts.PermitUnknownAIs)
		if !aiOK || (entry.Synthetic && entry.AI == "") {
			return nil, gs1err.New(gs1err.ErrDLURIParseFailed)
		}

		decoded, derr := percentDecode(segments[j+1], false)
		if derr == errNullByte {
			return nil, gs1err.NewAI(gs1err.ErrDecodedAIFromDLPathInfoContainsIllegalNull, aiCode)
		} else if derr != nil {
			return nil, gs1err.New(gs1err.ErrDLURIParseFailed)
		}
		if decoded == "" {
			return nil, gs1err.NewAI(gs1err.ErrAIValuePathElementIsEmpty, aiCode)
		}
		if opts.PermitZeroSuppressedGTIN && aiCode == "01" && isZeroSuppressibleGTINLength(len(decoded)) {
			decoded = padGTIN(decoded)
		}
		if cerr := lint.CheckNoCarat(decoded); cerr != nil {
			return nil, gs1err.NewAI(gs1err.ErrAIContainsIllegalCaratCharacter, aiCode)
		}
		if verr := lint.CheckValueLength(entry, decoded); verr != nil {
			if lerr, ok := verr.(*lint.ValueLengthError); ok && lerr.TooShort {
				return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooShort, aiCode)
			}
			return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooLong, aiCode)
		}

		if first || prevFNC1Required {
			out.Buffer.AppendFNC1()
		}
		out.Buffer.AppendAI(aiCode)
		offset, length := out.Buffer.AppendValue(decoded)
		if addErr := out.Add(aidata.Element{
			Kind:        aidata.KindAIValue,
			AI:          aiCode,
			AIEntry:     entry,
			ValueOffset: offset,
			ValueLength: length,
			DLPathOrder: order,
		}); addErr != nil {
			return nil, gs1err.New(gs1err.ErrTooManyAIs)
		}

		pathAIs = append(pathAIs, aiCode)
		first = false
		prevFNC1Required = entry.FNC1Required
		order++
		j += 2
	}
	if j != len(segments) {
		return nil, gs1err.New(gs1err.ErrAIValuePathElementIsEmpty)
	}

	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		eq := strings.IndexByte(segment, '=')
		if eq < 0 {
			if addErr := out.Add(aidata.Element{Kind: aidata.KindDLIgnored, RawQueryText: segment, DLPathOrder: aidata.Attribute}); addErr != nil {
				return nil, gs1err.New(gs1err.ErrTooManyAIs)
			}
			continue
		}
		key, rawValue := segment[:eq], segment[eq+1:]
		if !isAllDigits(key) {
			if addErr := out.Add(aidata.Element{Kind: aidata.KindDLIgnored, RawQueryText: segment, DLPathOrder: aidata.Attribute}); addErr != nil {
				return nil, gs1err.New(gs1err.ErrTooManyAIs)
			}
			continue
		}

		entry, aiOK := tbl.Lookup(key, len(key), false)
		if !aiOK || (entry.Synthetic && entry.AI == "") {
			return nil, gs1err.NewAI(gs1err.ErrUnknownAIInQueryParams, key)
		}

		decoded, derr := percentDecode(rawValue, true)
		if derr == errNullByte {
			return nil, gs1err.NewAI(gs1err.ErrDecodedAIValueFromQueryParamsContainsIllegalNull, entry.AI)
		} else if derr != nil {
			return nil, gs1err.New(gs1err.ErrDLURIParseFailed)
		}
		if decoded == "" {
			return nil, gs1err.NewAI(gs1err.ErrAIValueQueryElementIsEmpty, entry.AI)
		}
		if opts.PermitZeroSuppressedGTIN && entry.AI == "01" && isZeroSuppressibleGTINLength(len(decoded)) {
			decoded = padGTIN(decoded)
		}
		if cerr := lint.CheckNoCarat(decoded); cerr != nil {
			return nil, gs1err.NewAI(gs1err.ErrAIContainsIllegalCaratCharacter, entry.AI)
		}
		if verr := lint.CheckValueLength(entry, decoded); verr != nil {
			if lerr, ok := verr.(*lint.ValueLengthError); ok && lerr.TooShort {
				return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooShort, entry.AI)
			}
			return nil, gs1err.NewAI(gs1err.ErrAIValueIsTooLong, entry.AI)
		}

		if first || prevFNC1Required {
			out.Buffer.AppendFNC1()
		}
		out.Buffer.AppendAI(entry.AI)
		offset, length := out.Buffer.AppendValue(decoded)
		if addErr := out.Add(aidata.Element{
			Kind:        aidata.KindAIValue,
			AI:          entry.AI,
			AIEntry:     entry,
			ValueOffset: offset,
			ValueLength: length,
			DLPathOrder: aidata.Attribute,
		}); addErr != nil {
			return nil, gs1err.New(gs1err.ErrTooManyAIs)
		}

		first = false
		prevFNC1Required = entry.FNC1Required
	}

	if !tbl.HasKeyQualifierSequence(pathAIs) {
		return nil, gs1err.New(gs1err.ErrInvalidKeyQualifierSequence)
	}
	if err := checkNoDuplicateAIs(out); err != nil {
		return nil, err
	}
	// Misplaced-qualifier detection runs before the attribute-legality
	// check: a qualifier-class AI (DataAttrNone) found in query position
	// is never a legal attribute on its own, so without this ordering
	// the generic AI_IS_NOT_VALID_DATA_ATTRIBUTE would always pre-empt
	// the more specific AI_SHOULD_BE_IN_PATH_INFO diagnosis.
	if err := checkMisplacedQualifiers(tbl, out, pathAIs); err != nil {
		return nil, err
	}
	if err := checkAttributeLegality(out, opts); err != nil {
		return nil, err
	}

	if _, err := unbracketed.Process(tbl, out.Buffer.String(), false, unbracketed.Options{PermitUnknownAIs: opts.PermitUnknownAIs}); err != nil {
		return nil, err
	}

	return out, nil
}

func checkURIChars(uri string) error {
	for i := 0; i < len(uri); i++ {
		if !uriAllowed[uri[i]] {
			return gs1err.New(gs1err.ErrURIContainsIllegalCharacters)
		}
	}
	return nil
}

func stripScheme(uri string) (string, error) {
	for _, scheme := range schemes {
		if strings.HasPrefix(uri, scheme) {
			return uri[len(scheme):], nil
		}
	}
	return "", gs1err.New(gs1err.ErrURIContainsIllegalScheme)
}

func splitDomain(rest string) (domain, pathAndMore string) {
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[:idx], rest[idx:]
	}
	return rest, ""
}

func checkDomainChars(domain string) error {
	for i := 0; i < len(domain); i++ {
		if domainForbidden[domain[i]] {
			return gs1err.New(gs1err.ErrDomainContainsIllegalCharacters)
		}
	}
	return nil
}

func splitPathQueryFragment(pathAndMore string) (pathInfo, query string) {
	s := pathAndMore
	if hashIdx := strings.IndexByte(s, '#'); hashIdx >= 0 {
		s = s[:hashIdx]
	}
	if qIdx := strings.IndexByte(s, '?'); qIdx >= 0 {
		return s[:qIdx], s[qIdx+1:]
	}
	return s, ""
}

func splitPathSegments(pathInfo string) []string {
	trimmed := strings.Trim(pathInfo, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// findDLRoot scans segments right-to-left, a whole AI/value pair at a
// time, for the deepest pair whose AI segment is a registered DL primary
// key. A candidate AI segment that is not a recognised AI at all ends the
// search immediately: everything to its left cannot be AI data, so there
// is no root to find. A recognised but non-primary AI (a qualifier) steps
// the scan back one pair and continues.
func findDLRoot(tbl *aitable.Table, segments []string) (int, bool) {
	for i := len(segments) - 2; i >= 0; i -= 2 {
		entry, ok := tbl.Lookup(segments[i], len(segments[i]), false)
		if !ok {
			return 0, false
		}
		if tbl.IsDLPrimaryKey(entry.AI) {
			return i, true
		}
	}
	return 0, false
}

func checkNoDuplicateAIs(out *aidata.Table) error {
	seen := make(map[string]bool)
	for _, e := range out.AIValues() {
		if seen[e.AI] {
			return gs1err.NewAI(gs1err.ErrDuplicateAI, e.AI)
		}
		seen[e.AI] = true
	}
	return nil
}

func checkAttributeLegality(out *aidata.Table, opts Options) error {
	for _, e := range out.AIValues() {
		if e.DLPathOrder != aidata.Attribute {
			continue
		}
		switch e.AIEntry.DLDataAttrClass {
		case aitable.DataAttrAllowed:
			continue
		case aitable.DataAttrUnknownPlaceholder:
			if opts.AllowUnknownAIAsDLAttr {
				continue
			}
		}
		return gs1err.NewAI(gs1err.ErrAIIsNotValidDataAttribute, e.AI)
	}
	return nil
}

func checkMisplacedQualifiers(tbl *aitable.Table, out *aidata.Table, pathAIs []string) error {
	for _, e := range out.AIValues() {
		if e.DLPathOrder != aidata.Attribute {
			continue
		}
		for pos := 1; pos <= len(pathAIs); pos++ {
			candidate := make([]string, 0, len(pathAIs)+1)
			candidate = append(candidate, pathAIs[:pos]...)
			candidate = append(candidate, e.AI)
			candidate = append(candidate, pathAIs[pos:]...)
			if tbl.HasKeyQualifierSequence(candidate) {
				return gs1err.NewAI(gs1err.ErrAIShouldBeInPathInfo, e.AI)
			}
		}
	}
	return nil
}
