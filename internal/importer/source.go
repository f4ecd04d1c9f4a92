package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrEmptySource is reported when a source yields no data rows at all.
var ErrEmptySource = errors.New("source contains no data rows")

// SourceError is the fatal, batch-level error class: the source could not
// be read at all, so no partial import result exists. Row-level problems
// are never reported this way.
type SourceError struct {
	Kind string // "csv", "xlsx" or "sheet"
	Err  error
}

func (e *SourceError) Error() string {
	return "schedule source (" + e.Kind + ") unreachable: " + e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }

// RawRow is one data row exactly as read from the source. Line is the
// 1-based position the user sees in their editor: the header row occupies
// line 1, so the first data row is line 2.
type RawRow struct {
	Line  int
	Cells []string
}

// RowSource yields the data rows of one import source in source order.
// The header row is consumed by the source itself and exposed separately;
// it never appears in the Next stream. Sources are single-pass and not
// restartable.
type RowSource interface {
	// Kind identifies the source type for logging and error reporting.
	Kind() string
	// Header returns the raw header row, cells trimmed.
	Header() []string
	// Next returns the next data row, or io.EOF when the source is
	// drained. Any other error is a *SourceError.
	Next() (RawRow, error)
}

// CSVSource reads rows incrementally from a CSV stream. The header row is
// read at construction time, so a stream that cannot produce even a
// header fails fast with a *SourceError.
type CSVSource struct {
	reader *csv.Reader
	header []string
	line   int
}

func NewCSVSource(r io.Reader) (*CSVSource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields, short rows are handled per row

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &SourceError{Kind: "csv", Err: ErrEmptySource}
	}
	if err != nil {
		return nil, &SourceError{Kind: "csv", Err: err}
	}

	return &CSVSource{
		reader: reader,
		header: trimCells(header),
		line:   1, // header occupies line 1
	}, nil
}

func (s *CSVSource) Kind() string { return "csv" }

func (s *CSVSource) Header() []string { return s.header }

func (s *CSVSource) Next() (RawRow, error) {
	record, err := s.reader.Read()
	if err == io.EOF {
		return RawRow{}, io.EOF
	}
	if err != nil {
		return RawRow{}, &SourceError{Kind: "csv", Err: err}
	}
	s.line++
	return RawRow{Line: s.line, Cells: record}, nil
}

// memSource serves pre-fetched rows (XLSX sheets, spreadsheet ranges).
type memSource struct {
	kind   string
	header []string
	rows   [][]string
	pos    int
}

func newMemSource(kind string, all [][]string) (*memSource, error) {
	if len(all) < 2 {
		// header only, or nothing at all
		return nil, &SourceError{Kind: kind, Err: ErrEmptySource}
	}
	return &memSource{
		kind:   kind,
		header: trimCells(all[0]),
		rows:   all[1:],
	}, nil
}

func (s *memSource) Kind() string { return s.kind }

func (s *memSource) Header() []string { return s.header }

func (s *memSource) Next() (RawRow, error) {
	if s.pos >= len(s.rows) {
		return RawRow{}, io.EOF
	}
	row := RawRow{Line: s.pos + 2, Cells: s.rows[s.pos]}
	s.pos++
	return row, nil
}

func trimCells(cells []string) []string {
	trimmed := make([]string, len(cells))
	for i, c := range cells {
		trimmed[i] = strings.TrimSpace(c)
	}
	return trimmed
}
