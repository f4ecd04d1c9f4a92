package repository

import (
	"context"

	"github.com/FertVad/CampusConnect-sub003/internal/domain"
	"gorm.io/gorm"
)

// SubjectRepository backs the import pipeline's subject lookup
// capability.
type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) Create(subject *domain.Subject) error {
	return r.db.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id int64) (*domain.Subject, error) {
	var subject domain.Subject
	err := r.db.Where("id = ?", id).First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// Exists reports whether a single subject ID is present.
func (r *SubjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subject{}).
		Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsAll returns the subset of ids present in the subjects table in
// one query. Used by the import validator to avoid a round trip per row.
func (r *SubjectRepository) ExistsAll(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []int64
	err := r.db.WithContext(ctx).Model(&domain.Subject{}).
		Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// NameIDMap returns the full subject name→ID table, for callers that
// resolve import rows against real subject records instead of derived
// IDs.
func (r *SubjectRepository) NameIDMap() (map[string]int64, error) {
	var subjects []domain.Subject
	if err := r.db.Select("id", "name").Find(&subjects).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(subjects))
	for _, s := range subjects {
		ids[s.Name] = s.ID
	}
	return ids, nil
}
