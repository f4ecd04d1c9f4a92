// Package importer implements the schedule import pipeline: reading
// tabular rows from an uploaded file or a linked spreadsheet, decoding
// them into schedule candidates, validating subject references and
// producing a per-row import report with partial-success semantics.
package importer

import (
	"context"
	"fmt"
	"io"
)

// Logger is the leveled logging capability injected into the
// orchestrator. Parsing itself never logs; only the orchestration layer
// reports progress and failures.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Importer orchestrates one import run: schema selection, row decoding,
// referential validation and result aggregation. It is the only
// component aware of which source type is in use.
type Importer struct {
	schema   HeaderSchema
	lookup   SubjectLookup
	resolver SubjectResolver
	log      Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger injects the observability sink for import runs.
func WithLogger(log Logger) Option {
	return func(imp *Importer) { imp.log = log }
}

// WithSchema overrides the default schedule schema.
func WithSchema(schema HeaderSchema) Option {
	return func(imp *Importer) { imp.schema = schema }
}

// New builds an Importer. The subject lookup and resolver are required
// collaborators: running without a real lookup is a configuration error,
// not grounds for a silent fallback.
func New(lookup SubjectLookup, resolver SubjectResolver, opts ...Option) (*Importer, error) {
	if lookup == nil {
		return nil, fmt.Errorf("importer: subject lookup is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("importer: subject resolver is required")
	}
	imp := &Importer{
		schema:   ScheduleSchema(),
		lookup:   lookup,
		resolver: resolver,
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp, nil
}

// Output carries the import report together with the validated items the
// caller may hand to persistence. The pipeline's responsibility ends
// here; storing the items and notifying anyone is the caller's business.
type Output struct {
	Result Result
	Items  []ValidatedItem
}

// Run drains one source through the pipeline. A *SourceError (unreadable
// stream, unreachable sheet, empty source) aborts the whole run with no
// partial result; malformed rows never do.
func (imp *Importer) Run(ctx context.Context, src RowSource) (*Output, error) {
	decoder, err := NewDecoder(imp.schema, src.Header(), imp.resolver)
	if err != nil {
		imp.log.Errorf("schedule import (%s): %v", src.Kind(), err)
		return nil, err
	}

	var (
		total      int
		candidates []*Candidate
		rowErrs    []RowError
	)
	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			imp.log.Errorf("schedule import (%s): %v", src.Kind(), err)
			return nil, err
		}
		total++

		candidate, rowErr := decoder.Decode(row)
		if rowErr != nil {
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		candidates = append(candidates, candidate)
	}

	if total == 0 {
		err := &SourceError{Kind: src.Kind(), Err: ErrEmptySource}
		imp.log.Errorf("schedule import (%s): %v", src.Kind(), err)
		return nil, err
	}

	validated, rejected, err := ValidateAll(ctx, imp.lookup, candidates)
	if err != nil {
		imp.log.Errorf("schedule import (%s): %v", src.Kind(), err)
		return nil, err
	}
	rowErrs = append(rowErrs, rejected...)

	result := BuildResult(total, validated, rowErrs)
	if result.Failed > 0 {
		imp.log.Warnf("schedule import (%s): %d of %d rows rejected", src.Kind(), result.Failed, result.Total)
	}
	imp.log.Infof("schedule import (%s): %d rows, %d imported, %d failed", src.Kind(), result.Total, result.Success, result.Failed)

	return &Output{Result: result, Items: validated}, nil
}
