package importer

import (
	"fmt"
	"strings"
)

// Recognized schedule column names. CSV headers and spreadsheet row 1
// must use these names exactly; column order does not matter.
const (
	ColCourse    = "Course"
	ColSpecialty = "Specialty"
	ColGroup     = "Group"
	ColDay       = "Day"
	ColStartTime = "Start Time"
	ColEndTime   = "End Time"
	ColSubject   = "Subject"
	ColTeacher   = "Teacher"
	ColRoom      = "Room"
)

// HeaderSchema is the set of columns an import type understands, in
// canonical order, with a subset marked optional. It is fixed per import
// type and never mutated.
type HeaderSchema struct {
	Columns  []string
	Optional map[string]bool
}

// ScheduleSchema is the schema shared by all schedule sources. Room is
// the only optional column.
func ScheduleSchema() HeaderSchema {
	return HeaderSchema{
		Columns: []string{
			ColCourse, ColSpecialty, ColGroup, ColDay,
			ColStartTime, ColEndTime, ColSubject, ColTeacher, ColRoom,
		},
		Optional: map[string]bool{ColRoom: true},
	}
}

// Mandatory returns the mandatory columns in canonical order.
func (s HeaderSchema) Mandatory() []string {
	mandatory := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if !s.Optional[col] {
			mandatory = append(mandatory, col)
		}
	}
	return mandatory
}

// ColumnIndex maps recognized column names to their position in one
// concrete source's header row.
type ColumnIndex map[string]int

// Resolve matches the schema against an actual header row by name. Every
// mandatory column must be present; the result is the per-source cell
// index used for all subsequent row access.
func (s HeaderSchema) Resolve(header []string) (ColumnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make(ColumnIndex, len(s.Columns))
	for _, col := range s.Columns {
		pos, ok := positions[col]
		if !ok {
			if s.Optional[col] {
				continue
			}
			return nil, fmt.Errorf("header is missing required column %q", col)
		}
		index[col] = pos
	}
	return index, nil
}

// Cell returns the trimmed cell for a named column, and whether the row
// actually carries that column.
func (ix ColumnIndex) Cell(row RawRow, col string) (string, bool) {
	pos, ok := ix[col]
	if !ok || pos >= len(row.Cells) {
		return "", false
	}
	return strings.TrimSpace(row.Cells[pos]), true
}
