// Package validate implements the Cross-AI Validators: a
// fixed registry of global validators run, in registration order, over an
// already-extracted AI table, stopping at the first failure.
//
// Grounded on validateAImutex/validateAIrequisites/validateAIrepeats in
// the GS1 Barcode Syntax Engine's ai.c and the
// digital-signature serial check in dl.c. The C registry of function
// pointers with locked/enabled flags becomes a small set of validator
// identities plus runtime-toggleable entries.
package validate

import (
	"fmt"

	"github.com/gs1ai/gs1ai/aidata"
)

// Identity names one entry of the validator registry.
type Identity int

const (
	// Mutex is vMUTEX_AIS.
	Mutex Identity = iota
	// Requisites is vREQUISITE_AIS.
	Requisites
	// Repeats is vREPEATED_AIS.
	Repeats
	// DigSigSerial is vDIGSIG_SERIAL_KEY.
	DigSigSerial
	// UnknownAINotDLAttr is vUNKNOWN_AI_NOT_DL_ATTR: a policy toggle only,
	// consulted by the DL URI parser and generator, with no validator
	// function of its own.
	UnknownAINotDLAttr
)

func (id Identity) String() string {
	switch id {
	case Mutex:
		return "vMUTEX_AIS"
	case Requisites:
		return "vREQUISITE_AIS"
	case Repeats:
		return "vREPEATED_AIS"
	case DigSigSerial:
		return "vDIGSIG_SERIAL_KEY"
	case UnknownAINotDLAttr:
		return "vUNKNOWN_AI_NOT_DL_ATTR"
	default:
		return fmt.Sprintf("Identity(%d)", int(id))
	}
}

// Func is one validator's implementation, run against an already-built
// extracted-AI table.
type Func func(extracted *aidata.Table) error

type entry struct {
	identity Identity
	locked   bool
	enabled  bool
	fn       Func // nil for UnknownAINotDLAttr, a policy-only toggle
}

// LockedError reports an attempt to toggle a locked registry entry.
type LockedError struct {
	Identity Identity
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("validate: %s is locked and cannot be toggled", e.Identity)
}

// Registry is the fixed, ordered set of cross-AI validators, each with a
// locked/enabled flag.
type Registry struct {
	entries []entry
}

// NewRegistry builds the standard registry with every validator enabled.
func NewRegistry() *Registry {
	return &Registry{entries: []entry{
		{identity: Mutex, locked: true, enabled: true, fn: validateMutex},
		{identity: Requisites, locked: false, enabled: true, fn: validateRequisites},
		{identity: Repeats, locked: true, enabled: true, fn: validateRepeats},
		{identity: DigSigSerial, locked: true, enabled: true, fn: validateDigSigSerial},
		{identity: UnknownAINotDLAttr, locked: false, enabled: true, fn: nil},
	}}
}

// Run executes every enabled validator with a function, in registration
// order, stopping and returning the first failure.
func (r *Registry) Run(extracted *aidata.Table) error {
	for _, e := range r.entries {
		if e.fn == nil || !e.enabled {
			continue
		}
		if err := e.fn(extracted); err != nil {
			return err
		}
	}
	return nil
}

// SetEnabled toggles identity's enabled flag. It fails with *LockedError
// if the entry is locked.
func (r *Registry) SetEnabled(identity Identity, enabled bool) error {
	for i := range r.entries {
		if r.entries[i].identity == identity {
			if r.entries[i].locked {
				return &LockedError{Identity: identity}
			}
			r.entries[i].enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("validate: unknown identity %s", identity)
}

// IsEnabled reports identity's current enabled flag.
func (r *Registry) IsEnabled(identity Identity) bool {
	for _, e := range r.entries {
		if e.identity == identity {
			return e.enabled
		}
	}
	return false
}

// UnknownAIAllowedAsDLAttr reports whether the vUNKNOWN_AI_NOT_DL_ATTR
// toggle currently permits a vivified unknown-placeholder AI to appear as
// a DL query attribute: true when the toggle is disabled.
func (r *Registry) UnknownAIAllowedAsDLAttr() bool {
	return !r.IsEnabled(UnknownAINotDLAttr)
}
