package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaregivingLog is an append-only audit entry of care performed. Entries are
// never updated or deleted once written.
type CaregivingLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CaregiverID uuid.UUID `json:"caregiver_id" gorm:"type:char(36);not null;index"`
	ElderlyID   uuid.UUID `json:"elderly_id" gorm:"type:char(36);not null;index"`
	Task        string    `json:"task" gorm:"type:text;not null"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Caregiver CaregiverProfile `json:"-" gorm:"foreignKey:CaregiverID"`
	Elderly   ElderlyProfile   `json:"-" gorm:"foreignKey:ElderlyID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *CaregivingLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
