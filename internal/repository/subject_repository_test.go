package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/FertVad/CampusConnect-sub003/internal/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.Subject{}, &domain.ScheduleItem{}, &domain.ScheduleImportLog{})
	require.NoError(t, err)

	return db
}

func seedSubjects(t *testing.T, repo *SubjectRepository, subjects map[int64]string) {
	t.Helper()
	for id, name := range subjects {
		require.NoError(t, repo.Create(&domain.Subject{ID: id, Name: name}))
	}
}

func TestSubjectRepository_ExistsAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepository(db)
	seedSubjects(t, repo, map[int64]string{1: "Математика", 2: "Физика"})

	existing, err := repo.ExistsAll(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, existing[1])
	assert.True(t, existing[2])
	assert.False(t, existing[3], "unknown id must not be reported as existing")
}

func TestSubjectRepository_ExistsAllEmptyInput(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepository(db)

	existing, err := repo.ExistsAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, existing)
}

func TestSubjectRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepository(db)
	seedSubjects(t, repo, map[int64]string{7: "Химия"})

	ok, err := repo.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), 8)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubjectRepository_NameIDMap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepository(db)
	seedSubjects(t, repo, map[int64]string{1: "Математика", 2: "Физика"})

	ids, err := repo.NameIDMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Математика": 1, "Физика": 2}, ids)
}
