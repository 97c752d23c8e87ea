// Command seed populates a development database with one user per role,
// profiles and a handful of schedules.
package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"careconnect/internal/config"
	"careconnect/internal/db"
	"careconnect/internal/model"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	caregiver := &model.User{Username: "carol", Email: "carol@example.com", PasswordHash: string(hash), Role: model.RoleCaregiver}
	family := &model.User{Username: "frank", Email: "frank@example.com", PasswordHash: string(hash), Role: model.RoleFamily}
	admin := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: string(hash), Role: model.RoleAdmin}
	for _, u := range []*model.User{caregiver, family, admin} {
		if err := gormDB.Where("email = ?", u.Email).FirstOrCreate(u).Error; err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	profile := &model.CaregiverProfile{
		UserID:      caregiver.ID,
		Name:        "Carol Jensen",
		Phone:       "+1-555-0101",
		Address:     "12 Elm Street",
		DateOfBirth: time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
	}
	if err := gormDB.Where("user_id = ?", caregiver.ID).FirstOrCreate(profile).Error; err != nil {
		log.Fatalf("seed caregiver profile: %v", err)
	}

	elderly := &model.ElderlyProfile{
		FamilyMemberID:   family.ID,
		Name:             "Margaret Holt",
		DateOfBirth:      time.Date(1941, 9, 3, 0, 0, 0, 0, time.UTC),
		Gender:           "female",
		MedicalCondition: "mild dementia",
		Location:         "Brookfield",
	}
	if err := gormDB.Where("family_member_id = ? AND name = ?", family.ID, elderly.Name).FirstOrCreate(elderly).Error; err != nil {
		log.Fatalf("seed elderly profile: %v", err)
	}

	schedules := []model.Schedule{
		{
			ElderlyID:  elderly.ID,
			Date:       time.Now().AddDate(0, 0, 1),
			StartTime:  "09:00",
			EndTime:    "11:30",
			Location:   "Brookfield",
			TaskList:   "medication,breakfast,walk",
			HourlyRate: decimal.RequireFromString("20.00"),
		},
		{
			ElderlyID:  elderly.ID,
			Date:       time.Now().AddDate(0, 0, 3),
			StartTime:  "14:00",
			EndTime:    "18:00",
			Location:   "Brookfield",
			TaskList:   "physiotherapy,dinner",
			HourlyRate: decimal.RequireFromString("25.50"),
		},
	}
	for i := range schedules {
		s := &schedules[i]
		if err := gormDB.Where("elderly_id = ? AND date = ? AND start_time = ?", s.ElderlyID, s.Date, s.StartTime).
			FirstOrCreate(s).Error; err != nil {
			log.Fatalf("seed schedule: %v", err)
		}
	}

	log.Println("seed complete")
}
