package gs1ai

import "github.com/gs1ai/gs1ai/gs1err"

// ErrorCode and Error are re-exported from gs1err so callers never need to
// import that package directly; every lower layer (aitable, lint, aidata,
// parse/*, validate) constructs gs1err.Error values directly, since they
// cannot import this façade package without creating an import cycle.
type (
	ErrorCode                                           = gs1err.ErrorCode
	Error                                               = gs1err.Error
)

const (
	ErrAITableBrokenPrefixesDifferInLength              = gs1err.ErrAITableBrokenPrefixesDifferInLength
	ErrAIUnrecognised                                   = gs1err.ErrAIUnrecognised
	ErrAIParseFailed                                    = gs1err.ErrAIParseFailed
	ErrAIContainsIllegalCaratCharacter                  = gs1err.ErrAIContainsIllegalCaratCharacter
	ErrAIValueIsTooShort                                = gs1err.ErrAIValueIsTooShort
	ErrAIValueIsTooLong                                 = gs1err.ErrAIValueIsTooLong
	ErrAIDataIsEmpty                                    = gs1err.ErrAIDataIsEmpty
	ErrAIDataHasIncorrectLength                         = gs1err.ErrAIDataHasIncorrectLength
	ErrTooManyAIs                                       = gs1err.ErrTooManyAIs
	ErrMissingFNC1InFirstPosition                       = gs1err.ErrMissingFNC1InFirstPosition
	ErrAIDataEmpty                                      = gs1err.ErrAIDataEmpty
	ErrNoAIForPrefix                                    = gs1err.ErrNoAIForPrefix
	ErrAIDataIsTooLong                                  = gs1err.ErrAIDataIsTooLong
	ErrURIContainsIllegalCharacters                     = gs1err.ErrURIContainsIllegalCharacters
	ErrURIContainsIllegalScheme                         = gs1err.ErrURIContainsIllegalScheme
	ErrURIMissingDomainAndPathInfo                      = gs1err.ErrURIMissingDomainAndPathInfo
	ErrDomainContainsIllegalCharacters                  = gs1err.ErrDomainContainsIllegalCharacters
	ErrNoGS1DLKeysFoundInPathInfo                       = gs1err.ErrNoGS1DLKeysFoundInPathInfo
	ErrAIValuePathElementIsEmpty                        = gs1err.ErrAIValuePathElementIsEmpty
	ErrAIValueQueryElementIsEmpty                       = gs1err.ErrAIValueQueryElementIsEmpty
	ErrDecodedAIFromDLPathInfoContainsIllegalNull       = gs1err.ErrDecodedAIFromDLPathInfoContainsIllegalNull
	ErrDecodedAIValueFromQueryParamsContainsIllegalNull = gs1err.ErrDecodedAIValueFromQueryParamsContainsIllegalNull
	ErrUnknownAIInQueryParams                           = gs1err.ErrUnknownAIInQueryParams
	ErrInvalidKeyQualifierSequence                      = gs1err.ErrInvalidKeyQualifierSequence
	ErrDuplicateAI                                      = gs1err.ErrDuplicateAI
	ErrAIIsNotValidDataAttribute                        = gs1err.ErrAIIsNotValidDataAttribute
	ErrAIShouldBeInPathInfo                             = gs1err.ErrAIShouldBeInPathInfo
	ErrDLURIParseFailed                                 = gs1err.ErrDLURIParseFailed
	ErrAILinterError                                    = gs1err.ErrAILinterError
	ErrInvalidAIPairs                                   = gs1err.ErrInvalidAIPairs
	ErrRequiredAIsNotSatisfied                          = gs1err.ErrRequiredAIsNotSatisfied
	ErrInstancesOfAIHaveDifferentValues                 = gs1err.ErrInstancesOfAIHaveDifferentValues
	ErrSerialNotPresent                                 = gs1err.ErrSerialNotPresent
	ErrCannotCreateDLURIWithoutPrimaryKeyAI             = gs1err.ErrCannotCreateDLURIWithoutPrimaryKeyAI
)

// Sentinel returns an error value usable with errors.Is(err,
// gs1ai.Sentinel(code)) to test the code of any *Error without caring
// about its other fields.
func Sentinel(code ErrorCode) error { return gs1err.Sentinel(code) }
