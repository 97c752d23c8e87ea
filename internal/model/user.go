package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines dashboard routing and which operations a user may perform.
type Role string

const (
	RoleCaregiver Role = "caregiver"
	RoleFamily    Role = "family"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCaregiver, RoleFamily, RoleAdmin:
		return true
	}
	return false
}

// User is the root identity record. Email is the identity key; the role is
// fixed at signup and never changes afterwards.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username" gorm:"size:150;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role           `json:"role" gorm:"type:varchar(20);not null;index"`
	IsStaff      bool           `json:"is_staff" gorm:"default:false"`
	IsSuperuser  bool           `json:"is_superuser" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
