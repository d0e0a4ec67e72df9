// Package gs1ai is the public façade over the GS1 AI/Digital Link syntax
// engine: a Context compiled once from an aitable.Table, bundling the
// parse options and validator registry that the internal packages need
// to do the real work.
package gs1ai

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gs1ai/gs1ai/aidata"
	"github.com/gs1ai/gs1ai/aitable"
	"github.com/gs1ai/gs1ai/lint"
	"github.com/gs1ai/gs1ai/parse/bracketed"
	"github.com/gs1ai/gs1ai/parse/dlink"
	"github.com/gs1ai/gs1ai/parse/unbracketed"
	"github.com/gs1ai/gs1ai/validate"
)

// Context is the engine's entry point: a compiled AI table, the parse
// options, and the cross-AI validator registry.
type Context struct {
	table      *aitable.Table
	logger     *logrus.Logger
	validators *validate.Registry

	permitUnknownAIs         bool
	permitZeroSuppressedGTIN bool
}

// New returns a Context compiled from table, applying opts in order.
func New(table *aitable.Table, opts ...Option) *Context {
	c := &Context{
		table:      table,
		logger:     discardLogger(),
		validators: validate.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefault returns a Context over the embedded default AI table,
// applying opts in order. The default table always compiles; a failure
// here is a programmer error and panics.
func NewDefault(opts ...Option) *Context {
	tbl, err := aitable.Compile(aitable.DefaultEntries, lint.IsRegisteredName)
	if err != nil {
		panic(fmt.Sprintf("gs1ai: embedded default AI table failed to compile: %v", err))
	}
	return New(tbl, opts...)
}

// SetAITable compiles entries into a fresh AI dictionary and installs it
// on the Context, replacing the previous table and its derived indices.
//
// If compiling entries fails, the embedded default table is installed in
// its place and the compile error is returned, so the Context is left
// usable either way. A failure to compile the embedded default itself is
// a programmer error and panics.
func (c *Context) SetAITable(entries []aitable.Entry) error {
	tbl, err := aitable.Compile(entries, lint.IsRegisteredName)
	if err != nil {
		fallback, ferr := aitable.Compile(aitable.DefaultEntries, lint.IsRegisteredName)
		if ferr != nil {
			panic(fmt.Sprintf("gs1ai: embedded default AI table failed to compile: %v", ferr))
		}
		c.table = fallback
		return err
	}
	c.table = tbl
	return nil
}

// Validators returns the Context's cross-AI validator registry, for
// toggling unlocked entries (validate.Requisites, validate.UnknownAINotDLAttr).
func (c *Context) Validators() *validate.Registry { return c.validators }

// ParseAIData extracts AI data from bracketed "(AI)value" input, then
// runs the cross-AI validators.
func (c *Context) ParseAIData(input string) (*Result, error) {
	c.logger.WithField("stage", "bracketed_parse").Debug("parsing bracketed AI data")
	extracted, err := bracketed.Parse(c.table, input)
	if err != nil {
		c.logger.WithField("stage", "bracketed_parse").WithError(err).Debug("bracketed parse failed")
		return nil, err
	}
	return c.validateAndWrap(extracted)
}

// ParseScanData extracts AI data from unbracketed (barcode scan) input,
// then runs the cross-AI validators.
func (c *Context) ParseScanData(input string) (*Result, error) {
	c.logger.WithField("stage", "unbracketed_process").Debug("parsing scan data")
	extracted, err := unbracketed.Process(c.table, input, true, unbracketed.Options{PermitUnknownAIs: c.permitUnknownAIs})
	if err != nil {
		c.logger.WithField("stage", "unbracketed_process").WithError(err).Debug("scan data parse failed")
		return nil, err
	}
	return c.validateAndWrap(extracted)
}

// ParseDLURI extracts AI data from a GS1 Digital Link URI, then runs
// the cross-AI validators.
func (c *Context) ParseDLURI(uri string) (*Result, error) {
	c.logger.WithFields(logrus.Fields{"stage": "dl_uri_parse", "uri": uri}).Debug("parsing DL URI")
	extracted, err := dlink.Parse(c.table, uri, c.dlinkOptions())
	if err != nil {
		c.logger.WithField("stage", "dl_uri_parse").WithError(err).Debug("DL URI parse failed")
		return nil, err
	}
	return c.validateAndWrap(extracted)
}

// GenerateDLURI builds a GS1 Digital Link URI from result's extracted AI
// data, rooted at stem (or the default "https://id.gs1.org" if stem is
// empty).
func (c *Context) GenerateDLURI(result *Result, stem string) (string, error) {
	c.logger.WithField("stage", "dl_uri_generate").Debug("generating DL URI")
	uri, err := dlink.Generate(c.table, result.table, stem, c.dlinkOptions())
	if err != nil {
		c.logger.WithField("stage", "dl_uri_generate").WithError(err).Debug("DL URI generation failed")
		return "", err
	}
	return uri, nil
}

func (c *Context) dlinkOptions() dlink.Options {
	return dlink.Options{
		PermitUnknownAIs:         c.permitUnknownAIs,
		PermitZeroSuppressedGTIN: c.permitZeroSuppressedGTIN,
		AllowUnknownAIAsDLAttr:   c.validators.UnknownAIAllowedAsDLAttr(),
	}
}

func (c *Context) validateAndWrap(extracted *aidata.Table) (*Result, error) {
	c.logger.WithField("stage", "validator_dispatch").Debug("running cross-AI validators")
	if err := c.validators.Run(extracted); err != nil {
		c.logger.WithField("stage", "validator_dispatch").WithError(err).Debug("cross-AI validation failed")
		return nil, err
	}
	return &Result{table: extracted}, nil
}
