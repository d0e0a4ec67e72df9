// Package dlink implements the GS1 Digital Link URI parser and generator,
// modelled on the GS1 Barcode Syntax Engine's dl.c.
//
// Unlike the C encoder, which transiently writes NULs into the caller's
// buffer and restores them on every exit path, Parse takes an immutable
// string and never observes or mutates the caller's value.
package dlink

// Options configures a single Parse or Generate call.
type Options struct {
	// PermitUnknownAIs enables vivification of unrecognised AIs found in
	// the DL path, mirroring the table-wide knob of the same name.
	PermitUnknownAIs bool

	// PermitZeroSuppressedGTIN enables left-zero-padding a decoded AI 01
	// value of length 8, 12, or 13 up to 14, in both path and query
	// position.
	PermitZeroSuppressedGTIN bool

	// AllowUnknownAIAsDLAttr disables the vUNKNOWN_AI_NOT_DL_ATTR
	// validation toggle, which is on by default: a vivified
	// unknown-placeholder AI is rejected as a DL query attribute unless
	// this is set to true.
	AllowUnknownAIAsDLAttr bool
}
