package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FertVad/CampusConnect-sub003/internal/domain"
)

func scheduleItem(group string, dayOfWeek int, start string, subjectID int64) domain.ScheduleItem {
	return domain.ScheduleItem{
		Course:      "1",
		Specialty:   "ИС",
		GroupName:   group,
		DayOfWeek:   dayOfWeek,
		StartTime:   start,
		EndTime:     "10:30",
		SubjectID:   subjectID,
		TeacherName: "Иванов И.И.",
	}
}

func TestScheduleRepository_BulkCreateAndListByGroup(t *testing.T) {
	db := setupTestDB(t)
	subjectRepo := NewSubjectRepository(db)
	repo := NewScheduleRepository(db)
	seedSubjects(t, subjectRepo, map[int64]string{1: "Математика"})

	items := []domain.ScheduleItem{
		scheduleItem("ИС-101", 5, "09:00", 1),
		scheduleItem("ИС-101", 1, "11:00", 1),
		scheduleItem("ИС-101", 1, "09:00", 1),
		scheduleItem("ДО-202", 1, "09:00", 1),
	}
	require.NoError(t, repo.BulkCreate(items))

	listed, err := repo.ListByGroup("ИС-101")
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Ordered by weekday, then start time.
	assert.Equal(t, 1, listed[0].DayOfWeek)
	assert.Equal(t, "09:00", listed[0].StartTime)
	assert.Equal(t, 1, listed[1].DayOfWeek)
	assert.Equal(t, "11:00", listed[1].StartTime)
	assert.Equal(t, 5, listed[2].DayOfWeek)

	for _, item := range listed {
		assert.NotEqual(t, uuid.Nil, item.ID, "BeforeCreate must assign an ID")
	}
}

func TestScheduleRepository_BulkCreateEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleRepository(db)

	require.NoError(t, repo.BulkCreate(nil))
}

func TestScheduleRepository_ImportLogRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleRepository(db)

	log := &domain.ScheduleImportLog{
		Source:  domain.SourceCSV,
		Total:   3,
		Success: 1,
		Failed:  2,
		Errors: domain.ImportErrorList{
			{Row: 2, Error: "unrecognized weekday: Funday"},
			{Row: 4, Error: "subject with ID 12 does not exist"},
		},
	}
	require.NoError(t, repo.CreateImportLog(log))

	logs, err := repo.FindImportLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	saved := logs[0]
	assert.Equal(t, domain.SourceCSV, saved.Source)
	assert.Equal(t, 3, saved.Total)
	assert.Equal(t, 1, saved.Success)
	assert.Equal(t, 2, saved.Failed)
	require.Len(t, saved.Errors, 2)
	assert.Equal(t, 2, saved.Errors[0].Row)
	assert.Equal(t, "unrecognized weekday: Funday", saved.Errors[0].Error)
}
