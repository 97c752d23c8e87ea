// Package strategy holds interchangeable filter policies over the schedule
// store. A strategy is a value that yields a GORM scope: a lazy query
// description with no side effects, evaluated only when the repository runs
// the query. One predicate per strategy; they are not chainable.
package strategy

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScheduleStrategy selects which schedules a listing returns.
type ScheduleStrategy interface {
	Scope() func(*gorm.DB) *gorm.DB
}

// AllSchedules returns every schedule.
type AllSchedules struct{}

// Scope implements ScheduleStrategy.
func (AllSchedules) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db
	}
}

// ByLocation returns schedules whose location contains the given substring,
// case-insensitively.
type ByLocation struct {
	Location string
}

// Scope implements ScheduleStrategy.
func (s ByLocation) Scope() func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(s.Location) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(location) LIKE ?", pattern)
	}
}

// ByMaxRate returns schedules whose hourly rate does not exceed the ceiling.
type ByMaxRate struct {
	MaxRate decimal.Decimal
}

// Scope implements ScheduleStrategy.
func (s ByMaxRate) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("hourly_rate <= ?", s.MaxRate)
	}
}
