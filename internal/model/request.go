package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus is the lifecycle state of a caregiver request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// CaregiverRequest is a family member's solicitation of a specific caregiver
// for a specific elderly person. Created pending; the targeted caregiver moves
// it to accepted or declined, both terminal.
type CaregiverRequest struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	FamilyID    uuid.UUID      `json:"family_id" gorm:"type:char(36);not null;index"`
	CaregiverID uuid.UUID      `json:"caregiver_id" gorm:"type:char(36);not null;index"`
	ElderlyID   uuid.UUID      `json:"elderly_id" gorm:"type:char(36);not null;index"`
	Status      RequestStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestedAt time.Time      `json:"requested_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Family    User             `json:"-" gorm:"foreignKey:FamilyID"`
	Caregiver CaregiverProfile `json:"-" gorm:"foreignKey:CaregiverID"`
	Elderly   ElderlyProfile   `json:"elderly,omitempty" gorm:"foreignKey:ElderlyID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *CaregiverRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
