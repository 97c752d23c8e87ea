package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Schedule is a dated, timed care engagement for an elderly person. Start and
// end are stored as HH:MM wall-clock strings on the schedule's date; the
// service layer rejects windows where end is not after start.
type Schedule struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ElderlyID  uuid.UUID       `json:"elderly_id" gorm:"type:char(36);not null;index"`
	Date       time.Time       `json:"date" gorm:"type:date;not null;index"`
	StartTime  string          `json:"start_time" gorm:"size:5;not null"` // HH:MM
	EndTime    string          `json:"end_time" gorm:"size:5;not null"`   // HH:MM
	Location   string          `json:"location" gorm:"size:255;index"`
	TaskList   string          `json:"task_list" gorm:"type:text"` // comma-separated
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Elderly ElderlyProfile `json:"elderly,omitempty" gorm:"foreignKey:ElderlyID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CaregiverAssignment records a caregiver claiming a schedule. The composite
// unique index rejects a second confirmation for the same pair at the database
// level, not only in the service check.
type CaregiverAssignment struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	ScheduleID  uuid.UUID      `json:"schedule_id" gorm:"type:char(36);not null;uniqueIndex:idx_schedule_caregiver"`
	CaregiverID uuid.UUID      `json:"caregiver_id" gorm:"type:char(36);not null;uniqueIndex:idx_schedule_caregiver"`
	Confirmed   bool           `json:"confirmed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Schedule  Schedule `json:"-" gorm:"foreignKey:ScheduleID"`
	Caregiver User     `json:"-" gorm:"foreignKey:CaregiverID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *CaregiverAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
