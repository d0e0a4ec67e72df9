// Package unbracketed implements the Unbracketed Processor: scan-data
// form ("^AIvalue^AIvalue…") ingestion, producing the normalized form
// plus (optionally) the extracted-AI table.
//
// Grounded on gs1_processAIdata in the GS1 Barcode Syntax Engine's ai.c, split
// from its single dual-purpose C function into a Go function whose
// extract bool keeps the same two call shapes: a standalone parse of raw
// scan data (extract=true, building a fresh aidata.Table), and the
// linter-only revalidation pass the bracketed and DL parsers run over a
// buffer whose extracted table they already built (extract=false).
package unbracketed

import (
	"strings"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/gs1err"
	"github.com/gs1ai/gs1ai/lint"
)

// Options configures a single Process call.
type Options struct {
	PermitUnknownAIs bool
}

// Process parses input, an FNC1-delimited unbracketed AI data string. When
// extract is true, it builds and returns a fresh *aidata.Table holding a
// freshly re-emitted normalized buffer; when false, it only runs the
// per-AI linter pass and returns (nil, nil) on success, never allocating a
// buffer of its own.
func Process(tbl *aitable.Table, input string, extract bool, opts Options) (*aidata.Table, error) {
	if len(input) == 0 || input[0] != aidata.FNC1 {
		return nil, gs1err.New(gs1err.ErrMissingFNC1InFirstPosition)
	}
	if len(input) == 1 {
		return nil, gs1err.New(gs1err.ErrAIDataEmpty)
	}

	var out *aidata.Table
	if extract {
		out = aidata.NewTable(aidata.NewBuffer(len(input)))
	}

	first := true
	prevFNC1Required := false

	p := 1
	for p < len(input) {
		remaining := input[p:]
		entry, ok := tbl.Lookup(remaining, 0, opts.PermitUnknownAIs)
		if !ok || (entry.Synthetic && entry.AI == "") {
			if extract {
				return nil, gs1err.New(gs1err.ErrNoAIForPrefix)
			}
			return nil, gs1err.New(gs1err.ErrAIDataIsTooLong)
		}

		aiLen := len(entry.AI)
		aiCode := remaining[:aiLen]
		valueStart := p + aiLen

		r := strings.IndexByte(input[valueStart:], aidata.FNC1)
		if r < 0 {
			r = len(input)
		} else {
			r += valueStart
		}

		// No aggregate length pre-check here: the component pipeline
		// consumes at most each component's maximum, so overlong input
		// surfaces either as a missing FNC1 (variable-length AIs) or as
		// an unparseable next-AI prefix (fixed-length AIs).
		span := input[valueStart:r]
		vallen, err := lint.Run(aiCode, entry.Components, span)
		if err != nil {
			return nil, translateLintErr(aiCode, err)
		}

		valueEnd := valueStart + vallen
		if entry.FNC1Required {
			if valueEnd != len(input) && input[valueEnd] != aidata.FNC1 {
				return nil, gs1err.NewAI(gs1err.ErrAIDataIsTooLong, aiCode)
			}
		}

		if out != nil {
			if first || prevFNC1Required {
				out.Buffer.AppendFNC1()
			}
			out.Buffer.AppendAI(aiCode)
			offset, length := out.Buffer.AppendValue(span[:vallen])
			if addErr := out.Add(aidata.Element{
				Kind:        aidata.KindAIValue,
				AI:          aiCode,
				AIEntry:     entry,
				ValueOffset: offset,
				ValueLength: length,
				DLPathOrder: aidata.Attribute,
			}); addErr != nil {
				return nil, gs1err.New(gs1err.ErrTooManyAIs)
			}
		}

		first = false
		prevFNC1Required = entry.FNC1Required

		p = valueEnd
		if p < len(input) && input[p] == aidata.FNC1 {
			p++
		}
	}

	return out, nil
}

func translateLintErr(ai string, err error) error {
	if err == lint.ErrEmptyValue {
		return gs1err.NewAI(gs1err.ErrAIDataIsEmpty, ai)
	}
	switch e := err.(type) {
	case *lint.LengthError:
		return gs1err.NewAI(gs1err.ErrAIDataHasIncorrectLength, ai)
	case *lint.LinterError:
		return gs1err.NewLinter(ai, e.LinterName, e.Markup)
	default:
		return gs1err.NewAI(gs1err.ErrAIParseFailed, ai)
	}
}
