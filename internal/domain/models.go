package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportSource identifies where an import batch came from.
type ImportSource string

const (
	SourceCSV   ImportSource = "csv"
	SourceXLSX  ImportSource = "xlsx"
	SourceSheet ImportSource = "sheet"
)

// Subject is a taught discipline. IDs are stable integers so that
// import rows can reference subjects deterministically (hash-derived or
// pre-resolved by the caller).
type Subject struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ScheduleItem is one validated schedule entry. Rows only reach this
// table after the import pipeline confirmed the subject reference.
type ScheduleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Course      string    `gorm:"type:varchar(50);not null" json:"course"`
	Specialty   string    `gorm:"type:varchar(100);not null" json:"specialty"`
	GroupName   string    `gorm:"type:varchar(50);not null;index" json:"group"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"` // 0-6, Sunday=0
	StartTime   string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime     string    `gorm:"type:varchar(5);not null" json:"end_time"`
	SubjectID   int64     `gorm:"not null;index" json:"subject_id"`
	Subject     *Subject  `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	TeacherName string    `gorm:"type:varchar(255);not null" json:"teacher_name"`
	Room        string    `gorm:"type:varchar(50)" json:"room,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (s *ScheduleItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ImportRowError is one rejected row as stored in the audit log.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportErrorList stores the per-row error report as a JSON column.
type ImportErrorList []ImportRowError

func (l ImportErrorList) Value() (driver.Value, error) {
	if l == nil {
		l = ImportErrorList{}
	}
	return json.Marshal(l)
}

func (l *ImportErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, l)
}

// ScheduleImportLog is the audit record of one import batch: what was
// attempted, how much succeeded and exactly which rows were rejected.
type ScheduleImportLog struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Source    ImportSource    `gorm:"type:varchar(10);not null" json:"source"`
	Total     int             `gorm:"not null" json:"total"`
	Success   int             `gorm:"not null" json:"success"`
	Failed    int             `gorm:"not null" json:"failed"`
	Errors    ImportErrorList `gorm:"type:jsonb" json:"errors"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (l *ScheduleImportLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
