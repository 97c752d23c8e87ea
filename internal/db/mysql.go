package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"careconnect/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate runs schema migrations for every persisted model. Order matters:
// parents before the rows that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.CaregiverProfile{},
		&model.ElderlyProfile{},
		&model.Schedule{},
		&model.CaregiverAssignment{},
		&model.CaregiverRequest{},
		&model.CaregivingLog{},
	)
}
