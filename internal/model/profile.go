package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaregiverProfile holds the personal details of a caregiver. At most one
// profile exists per user; the unique index makes the create guard safe under
// concurrent requests.
type CaregiverProfile struct {
	ID               uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Phone            string         `json:"phone" gorm:"size:32;not null"`
	Address          string         `json:"address" gorm:"size:255"`
	DateOfBirth      time.Time      `json:"date_of_birth" gorm:"type:date"`
	Gender           string         `json:"gender" gorm:"size:16"`
	EmergencyContact string         `json:"emergency_contact" gorm:"size:255"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *CaregiverProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ElderlyProfile is a person receiving care, registered and owned by a family
// member. A family member may register any number of elderly profiles.
type ElderlyProfile struct {
	ID               uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	FamilyMemberID   uuid.UUID      `json:"family_member_id" gorm:"type:char(36);not null;index"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	DateOfBirth      time.Time      `json:"date_of_birth" gorm:"type:date"`
	Gender           string         `json:"gender" gorm:"size:16"`
	MedicalCondition string         `json:"medical_condition" gorm:"type:text"`
	Location         string         `json:"location" gorm:"size:255;index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	FamilyMember User `json:"-" gorm:"foreignKey:FamilyMemberID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *ElderlyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
