package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleHeader() []string {
	return []string{
		"Course", "Specialty", "Group", "Day",
		"Start Time", "End Time", "Subject", "Teacher", "Room",
	}
}

func validCells() []string {
	return []string{"1", "ИС", "ИС-101", "Понедельник", "09:00", "10:30", "Математика", "Иванов И.И.", "305"}
}

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	decoder, err := NewDecoder(ScheduleSchema(), scheduleHeader(), HashResolver{})
	require.NoError(t, err)
	return decoder
}

func TestDecode_ValidRow(t *testing.T) {
	decoder := newTestDecoder(t)

	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: validCells()})
	require.Nil(t, rowErr)
	require.NotNil(t, candidate)

	assert.Equal(t, 2, candidate.Line)
	assert.Equal(t, "1", candidate.Course)
	assert.Equal(t, "ИС", candidate.Specialty)
	assert.Equal(t, "ИС-101", candidate.Group)
	assert.Equal(t, 1, candidate.DayOfWeek, "Понедельник is Monday, code 1")
	assert.Equal(t, "09:00", candidate.StartTime)
	assert.Equal(t, "10:30", candidate.EndTime)
	assert.Equal(t, "Математика", candidate.Subject)
	assert.Equal(t, "Иванов И.И.", candidate.Teacher)
	assert.Equal(t, "305", candidate.Room)
	assert.Equal(t, HashResolver{}.Resolve("Математика"), candidate.SubjectID)
}

func TestDecode_RoomIsOptional(t *testing.T) {
	decoder := newTestDecoder(t)

	cells := validCells()[:8] // no Room cell at all
	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
	require.Nil(t, rowErr)
	assert.Equal(t, "", candidate.Room)
}

func TestDecode_ShortRow(t *testing.T) {
	decoder := newTestDecoder(t)

	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: []string{"1", "ИС", "ИС-101"}})
	assert.Nil(t, candidate)
	require.NotNil(t, rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, "row is missing required columns", rowErr.Message)
}

func TestDecode_MissingMandatoryFieldIsNamed(t *testing.T) {
	decoder := newTestDecoder(t)

	columns := map[string]int{
		"Course": 0, "Specialty": 1, "Group": 2, "Day": 3,
		"Start Time": 4, "End Time": 5, "Subject": 6, "Teacher": 7,
	}
	for name, pos := range columns {
		cells := validCells()
		cells[pos] = ""
		candidate, rowErr := decoder.Decode(RawRow{Line: 4, Cells: cells})
		assert.Nil(t, candidate, "field %s", name)
		require.NotNil(t, rowErr, "field %s", name)
		assert.Equal(t, 4, rowErr.Row)
		assert.Equal(t, "missing required field: "+name, rowErr.Message)
	}
}

func TestDecode_WeekdayIsCaseInsensitive(t *testing.T) {
	decoder := newTestDecoder(t)

	for _, day := range []string{"Понедельник", "понедельник", "ПОНЕДЕЛЬНИК"} {
		cells := validCells()
		cells[3] = day
		candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
		require.Nil(t, rowErr, "day %s", day)
		assert.Equal(t, 1, candidate.DayOfWeek, "day %s", day)
	}
}

func TestDecode_FullWeekdayTable(t *testing.T) {
	decoder := newTestDecoder(t)

	days := map[string]int{
		"Воскресенье": 0,
		"Понедельник": 1,
		"Вторник":     2,
		"Среда":       3,
		"Четверг":     4,
		"Пятница":     5,
		"Суббота":     6,
	}
	for day, code := range days {
		cells := validCells()
		cells[3] = day
		candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
		require.Nil(t, rowErr, "day %s", day)
		assert.Equal(t, code, candidate.DayOfWeek, "day %s", day)
	}
}

func TestDecode_UnrecognizedWeekday(t *testing.T) {
	decoder := newTestDecoder(t)

	cells := validCells()
	cells[3] = "Funday"
	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
	assert.Nil(t, candidate)
	require.NotNil(t, rowErr)
	assert.Equal(t, "unrecognized weekday: Funday", rowErr.Message)
}

func TestDecode_InvalidTimes(t *testing.T) {
	decoder := newTestDecoder(t)

	bad := []string{"25:00", "9:5", "24:00", "12:60", "0900", "nine", "9.00"}
	for _, value := range bad {
		cells := validCells()
		cells[4] = value
		candidate, rowErr := decoder.Decode(RawRow{Line: 3, Cells: cells})
		assert.Nil(t, candidate, "value %s", value)
		require.NotNil(t, rowErr, "value %s", value)
		assert.Equal(t, 3, rowErr.Row)
		assert.Equal(t, "invalid time format for Start Time: "+value, rowErr.Message)
	}

	cells := validCells()
	cells[5] = "25:00"
	_, rowErr := decoder.Decode(RawRow{Line: 3, Cells: cells})
	require.NotNil(t, rowErr)
	assert.Equal(t, "invalid time format for End Time: 25:00", rowErr.Message)
}

func TestDecode_TimesAreZeroPadded(t *testing.T) {
	decoder := newTestDecoder(t)

	cells := validCells()
	cells[4] = "9:00"
	cells[5] = "0:05"
	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
	require.Nil(t, rowErr)
	assert.Equal(t, "09:00", candidate.StartTime)
	assert.Equal(t, "00:05", candidate.EndTime)
}

func TestDecode_IsDeterministic(t *testing.T) {
	decoder := newTestDecoder(t)

	row := RawRow{Line: 2, Cells: validCells()}
	first, rowErr := decoder.Decode(row)
	require.Nil(t, rowErr)
	second, rowErr := decoder.Decode(row)
	require.Nil(t, rowErr)
	assert.Equal(t, first, second)
}

func TestDecode_HeaderOrderDoesNotMatter(t *testing.T) {
	header := []string{
		"Room", "Teacher", "Subject", "End Time",
		"Start Time", "Day", "Group", "Specialty", "Course",
	}
	decoder, err := NewDecoder(ScheduleSchema(), header, HashResolver{})
	require.NoError(t, err)

	cells := []string{"305", "Иванов И.И.", "Математика", "10:30", "09:00", "Понедельник", "ИС-101", "ИС", "1"}
	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: cells})
	require.Nil(t, rowErr)
	assert.Equal(t, "ИС-101", candidate.Group)
	assert.Equal(t, 1, candidate.DayOfWeek)
	assert.Equal(t, "305", candidate.Room)
}

func TestNewDecoder_MissingMandatoryColumn(t *testing.T) {
	header := scheduleHeader()[:7] // drop Teacher and Room
	_, err := NewDecoder(ScheduleSchema(), header, HashResolver{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Teacher")
}

func TestNewDecoder_MissingOptionalColumnIsFine(t *testing.T) {
	header := scheduleHeader()[:8] // drop Room only
	decoder, err := NewDecoder(ScheduleSchema(), header, HashResolver{})
	require.NoError(t, err)

	candidate, rowErr := decoder.Decode(RawRow{Line: 2, Cells: validCells()[:8]})
	require.Nil(t, rowErr)
	assert.Equal(t, "", candidate.Room)
}

func TestHashResolver_IsStableAndBounded(t *testing.T) {
	resolver := HashResolver{}

	id := resolver.Resolve("Математика")
	assert.Equal(t, id, resolver.Resolve("Математика"))
	assert.Equal(t, id, resolver.Resolve("  Математика  "), "resolution trims whitespace")
	assert.Greater(t, id, int64(0))
	assert.LessOrEqual(t, id, int64(MaxDerivedSubjectID))

	assert.NotEqual(t, id, resolver.Resolve("Физика"))
}

func TestTableResolver_PrefersTableOverFallback(t *testing.T) {
	resolver := NewTableResolver(map[string]int64{"Математика": 42}, nil)

	assert.Equal(t, int64(42), resolver.Resolve("Математика"))
	assert.Equal(t, HashResolver{}.Resolve("Физика"), resolver.Resolve("Физика"))
}
