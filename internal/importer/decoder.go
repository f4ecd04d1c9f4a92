package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// weekdayCodes maps lowercased Russian weekday names to their canonical
// codes, Sunday=0 through Saturday=6.
var weekdayCodes = map[string]int{
	"воскресенье": 0,
	"понедельник": 1,
	"вторник":     2,
	"среда":       3,
	"четверг":     4,
	"пятница":     5,
	"суббота":     6,
}

// timePattern accepts H:MM and HH:MM with hours 0–23. Whether the start
// precedes the end is deliberately not checked here; this layer validates
// format only.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Candidate is a decoded, not-yet-validated schedule row. Candidates are
// immutable after creation; a correction means building a new one.
type Candidate struct {
	Line      int
	Course    string
	Specialty string
	Group     string
	DayOfWeek int    // 0–6, Sunday=0
	StartTime string // canonical zero-padded HH:MM
	EndTime   string
	Subject   string
	SubjectID int64
	Teacher   string
	Room      string // optional, empty when the cell is absent
}

// RowError reports why a single row was rejected. Row is the 1-based
// source line (header = line 1), so users can address the exact row in
// their file or sheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"error"`
}

// Decoder turns raw rows into candidates. It is pure: no I/O, no
// logging, and identical input always produces an identical candidate or
// error.
type Decoder struct {
	schema   HeaderSchema
	index    ColumnIndex
	resolver SubjectResolver
}

// NewDecoder resolves the schema against the source's actual header row.
// A header missing a mandatory column fails here, before any row is
// decoded, because every row would be undecodable against it.
func NewDecoder(schema HeaderSchema, header []string, resolver SubjectResolver) (*Decoder, error) {
	if resolver == nil {
		return nil, fmt.Errorf("subject resolver is required")
	}
	index, err := schema.Resolve(header)
	if err != nil {
		return nil, err
	}
	return &Decoder{schema: schema, index: index, resolver: resolver}, nil
}

// Decode maps one raw row to a candidate or to exactly one row error.
// It never panics and never aborts the batch for malformed data.
func (d *Decoder) Decode(row RawRow) (*Candidate, *RowError) {
	// The row must physically carry every mandatory column.
	for _, col := range d.schema.Mandatory() {
		if d.index[col] >= len(row.Cells) {
			return nil, &RowError{Row: row.Line, Message: "row is missing required columns"}
		}
	}

	// Mandatory fields must be non-empty, checked in schema order so the
	// first missing field is the one reported.
	fields := make(map[string]string, len(d.schema.Columns))
	for _, col := range d.schema.Mandatory() {
		value, _ := d.index.Cell(row, col)
		if value == "" {
			return nil, &RowError{Row: row.Line, Message: "missing required field: " + col}
		}
		fields[col] = value
	}

	day, ok := weekdayCodes[strings.ToLower(fields[ColDay])]
	if !ok {
		return nil, &RowError{Row: row.Line, Message: "unrecognized weekday: " + fields[ColDay]}
	}

	start, ok := normalizeTime(fields[ColStartTime])
	if !ok {
		return nil, &RowError{Row: row.Line, Message: "invalid time format for " + ColStartTime + ": " + fields[ColStartTime]}
	}
	end, ok := normalizeTime(fields[ColEndTime])
	if !ok {
		return nil, &RowError{Row: row.Line, Message: "invalid time format for " + ColEndTime + ": " + fields[ColEndTime]}
	}

	room, _ := d.index.Cell(row, ColRoom)

	return &Candidate{
		Line:      row.Line,
		Course:    fields[ColCourse],
		Specialty: fields[ColSpecialty],
		Group:     fields[ColGroup],
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Subject:   fields[ColSubject],
		SubjectID: d.resolver.Resolve(fields[ColSubject]),
		Teacher:   fields[ColTeacher],
		Room:      room,
	}, nil
}

// normalizeTime validates H:MM / HH:MM and returns the canonical
// zero-padded form.
func normalizeTime(value string) (string, bool) {
	if !timePattern.MatchString(value) {
		return "", false
	}
	if len(value) == 4 { // H:MM
		return "0" + value, true
	}
	return value, true
}
