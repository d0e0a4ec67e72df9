// Package gs1err holds the error taxonomy shared by every layer of the
// engine — aitable, lint, aidata, the three parsers, the generator, the
// cross-AI validators, and the root gs1ai façade — so that a failure
// raised deep in, say, the DL URI parser carries the same ErrorCode a
// caller of the façade sees, without the leaf packages importing the
// façade package itself (which imports them).
//
// The taxonomy mirrors the error families raised by the original C
// encoder (table-time, parse-time per input form, linter and cross-AI
// validation failures) in the GS1 Barcode Syntax Engine's ai.c and dl.c.
package gs1err

import "fmt"

// ErrorCode identifies a distinct failure condition in the GS1 AI/Digital
// Link syntax engine.
type ErrorCode int

const (
	// Table-time
	ErrAITableBrokenPrefixesDifferInLength ErrorCode = iota + 1

	// Parse-time, bracketed
	ErrAIUnrecognised
	ErrAIParseFailed
	ErrAIContainsIllegalCaratCharacter
	ErrAIValueIsTooShort
	ErrAIValueIsTooLong
	ErrAIDataIsEmpty
	ErrAIDataHasIncorrectLength
	ErrTooManyAIs

	// Parse-time, unbracketed
	ErrMissingFNC1InFirstPosition
	ErrAIDataEmpty
	ErrNoAIForPrefix
	ErrAIDataIsTooLong

	// Parse-time, DL URI
	ErrURIContainsIllegalCharacters
	ErrURIContainsIllegalScheme
	ErrURIMissingDomainAndPathInfo
	ErrDomainContainsIllegalCharacters
	ErrNoGS1DLKeysFoundInPathInfo
	ErrAIValuePathElementIsEmpty
	ErrAIValueQueryElementIsEmpty
	ErrDecodedAIFromDLPathInfoContainsIllegalNull
	ErrDecodedAIValueFromQueryParamsContainsIllegalNull
	ErrUnknownAIInQueryParams
	ErrInvalidKeyQualifierSequence
	ErrDuplicateAI
	ErrAIIsNotValidDataAttribute
	ErrAIShouldBeInPathInfo
	ErrDLURIParseFailed

	// Linter
	ErrAILinterError

	// Cross-AI
	ErrInvalidAIPairs
	ErrRequiredAIsNotSatisfied
	ErrInstancesOfAIHaveDifferentValues
	ErrSerialNotPresent

	// Generator
	ErrCannotCreateDLURIWithoutPrimaryKeyAI
)

var names = map[ErrorCode]string{
	ErrAITableBrokenPrefixesDifferInLength:              "AI_TABLE_BROKEN_PREFIXES_DIFFER_IN_LENGTH",
	ErrAIUnrecognised:                                   "AI_UNRECOGNISED",
	ErrAIParseFailed:                                    "AI_PARSE_FAILED",
	ErrAIContainsIllegalCaratCharacter:                  "AI_CONTAINS_ILLEGAL_CARAT_CHARACTER",
	ErrAIValueIsTooShort:                                "AI_VALUE_IS_TOO_SHORT",
	ErrAIValueIsTooLong:                                 "AI_VALUE_IS_TOO_LONG",
	ErrAIDataIsEmpty:                                    "AI_DATA_IS_EMPTY",
	ErrAIDataHasIncorrectLength:                         "AI_DATA_HAS_INCORRECT_LENGTH",
	ErrTooManyAIs:                                       "TOO_MANY_AIS",
	ErrMissingFNC1InFirstPosition:                       "MISSING_FNC1_IN_FIRST_POSITION",
	ErrAIDataEmpty:                                      "AI_DATA_EMPTY",
	ErrNoAIForPrefix:                                    "NO_AI_FOR_PREFIX",
	ErrAIDataIsTooLong:                                  "AI_DATA_IS_TOO_LONG",
	ErrURIContainsIllegalCharacters:                     "URI_CONTAINS_ILLEGAL_CHARACTERS",
	ErrURIContainsIllegalScheme:                         "URI_CONTAINS_ILLEGAL_SCHEME",
	ErrURIMissingDomainAndPathInfo:                      "URI_MISSING_DOMAIN_AND_PATH_INFO",
	ErrDomainContainsIllegalCharacters:                  "DOMAIN_CONTAINS_ILLEGAL_CHARACTERS",
	ErrNoGS1DLKeysFoundInPathInfo:                       "NO_GS1_DL_KEYS_FOUND_IN_PATH_INFO",
	ErrAIValuePathElementIsEmpty:                        "AI_VALUE_PATH_ELEMENT_IS_EMPTY",
	ErrAIValueQueryElementIsEmpty:                       "AI_VALUE_QUERY_ELEMENT_IS_EMPTY",
	ErrDecodedAIFromDLPathInfoContainsIllegalNull:       "DECODED_AI_FROM_DL_PATH_INFO_CONTAINS_ILLEGAL_NULL",
	ErrDecodedAIValueFromQueryParamsContainsIllegalNull: "DECODED_AI_VALUE_FROM_QUERY_PARAMS_CONTAINS_ILLEGAL_NULL",
	ErrUnknownAIInQueryParams:                           "UNKNOWN_AI_IN_QUERY_PARAMS",
	ErrInvalidKeyQualifierSequence:                      "INVALID_KEY_QUALIFIER_SEQUENCE",
	ErrDuplicateAI:                                      "DUPLICATE_AI",
	ErrAIIsNotValidDataAttribute:                        "AI_IS_NOT_VALID_DATA_ATTRIBUTE",
	ErrAIShouldBeInPathInfo:                             "AI_SHOULD_BE_IN_PATH_INFO",
	ErrDLURIParseFailed:                                 "DL_URI_PARSE_FAILED",
	ErrAILinterError:                                    "AI_LINTER_ERROR",
	ErrInvalidAIPairs:                                   "INVALID_AI_PAIRS",
	ErrRequiredAIsNotSatisfied:                          "REQUIRED_AIS_NOT_SATISFIED",
	ErrInstancesOfAIHaveDifferentValues:                 "INSTANCES_OF_AI_HAVE_DIFFERENT_VALUES",
	ErrSerialNotPresent:                                 "SERIAL_NOT_PRESENT",
	ErrCannotCreateDLURIWithoutPrimaryKeyAI:             "CANNOT_CREATE_DL_URI_WITHOUT_PRIMARY_KEY_AI",
}

// String returns the taxonomy name of the error code, e.g. "AI_UNRECOGNISED".
func (c ErrorCode) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is the error type returned by every parse/generate/validate
// operation across every layer, carrying enough context to reconstruct
// the original C encoder's formatted error messages.
type Error struct {
	Code ErrorCode

	// AI is the offending application identifier, when applicable.
	AI string

	// AI2 is a second AI involved in the failure (mutex/duplicate pairs).
	AI2 string

	// Detail is additional free-form context (e.g. a requisite group string).
	Detail string

	// LinterCode and Markup are populated only when Code == ErrAILinterError.
	LinterCode string
	Markup     string
}

func (e *Error) Error() string {
	switch {
	case e.Markup != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.LinterCode, e.Markup)
	case e.AI2 != "":
		return fmt.Sprintf("%s: AI (%s) and (%s)", e.Code, e.AI, e.AI2)
	case e.Detail != "":
		return fmt.Sprintf("%s: AI (%s): %s", e.Code, e.AI, e.Detail)
	case e.AI != "":
		return fmt.Sprintf("%s: AI (%s)", e.Code, e.AI)
	default:
		return e.Code.String()
	}
}

// Is reports whether target is the same ErrorCode, so callers can write
// errors.Is(err, gs1err.Sentinel(code)) against any *Error.
func (e *Error) Is(target error) bool {
	if cs, ok := target.(codeSentinel); ok {
		return e.Code == cs.code
	}
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

type codeSentinel struct{ code ErrorCode }

func (c codeSentinel) Error() string { return c.code.String() }

// Sentinel returns an error value usable with errors.Is(err, Sentinel(code))
// to test the code of any *Error without caring about its other fields.
func Sentinel(code ErrorCode) error { return codeSentinel{code} }

// New constructs a bare *Error with no extra context.
func New(code ErrorCode) *Error { return &Error{Code: code} }

// NewAI constructs a *Error naming the offending AI code.
func NewAI(code ErrorCode, ai string) *Error { return &Error{Code: code, AI: ai} }

// NewAIPair constructs a *Error naming two offending AI codes.
func NewAIPair(code ErrorCode, ai, ai2 string) *Error { return &Error{Code: code, AI: ai, AI2: ai2} }

// NewDetail constructs a *Error naming an AI code plus free-form detail.
func NewDetail(code ErrorCode, ai, detail string) *Error {
	return &Error{Code: code, AI: ai, Detail: detail}
}

// NewLinter constructs a *Error for a component linter failure.
func NewLinter(ai, linterCode, markup string) *Error {
	return &Error{Code: ErrAILinterError, AI: ai, LinterCode: linterCode, Markup: markup}
}
