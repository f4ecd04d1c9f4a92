package repository

import (
	"github.com/FertVad/CampusConnect-sub003/internal/domain"
	"gorm.io/gorm"
)

// ScheduleRepository persists validated schedule items and import audit
// logs.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// BulkCreate inserts validated items in batches. Called with the output
// of a successful import run only.
func (r *ScheduleRepository) BulkCreate(items []domain.ScheduleItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.CreateInBatches(items, 100).Error
}

// ListByGroup returns a group's schedule ordered the way a timetable is
// read: by weekday, then by start time.
func (r *ScheduleRepository) ListByGroup(group string) ([]domain.ScheduleItem, error) {
	var items []domain.ScheduleItem
	err := r.db.Preload("Subject").
		Where("group_name = ?", group).
		Order("day_of_week ASC, start_time ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateImportLog records the audit entry for one import batch.
func (r *ScheduleRepository) CreateImportLog(log *domain.ScheduleImportLog) error {
	return r.db.Create(log).Error
}

// FindImportLogs returns recent import batches, newest first.
func (r *ScheduleRepository) FindImportLogs(limit int) ([]domain.ScheduleImportLog, error) {
	var logs []domain.ScheduleImportLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
