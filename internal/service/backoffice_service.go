package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"careconnect/internal/mail"
	"careconnect/internal/model"
	"careconnect/internal/repository"
	"careconnect/internal/strategy"
)

// ScheduleStatus classifies a schedule's date relative to today.
type ScheduleStatus string

const (
	StatusPast     ScheduleStatus = "Past"
	StatusToday    ScheduleStatus = "Today"
	StatusUpcoming ScheduleStatus = "Upcoming"
)

var (
	rateIncreaseFactor = decimal.NewFromFloat(1.10)
	rateDecreaseFactor = decimal.NewFromFloat(0.90)
)

// csvHeader is the fixed column order of the payments report.
var csvHeader = []string{
	"elderly_name", "date", "start", "end", "duration",
	"hourly_rate", "estimated_cost", "location", "tasks",
}

// BackofficeService implements the admin payment and reporting operations.
type BackofficeService interface {
	ListReports(ctx context.Context) ([]ScheduleReport, error)
	// AdjustRates multiplies each selected schedule's hourly rate by 1.10
	// (increase=true) or 0.90, rounding each result to 2 decimals
	// independently. Returns the number of rows updated.
	AdjustRates(ctx context.Context, ids []uuid.UUID, increase bool) (int, error)
	// ExportCSV renders payments_report.csv for the selected schedules:
	// a header row plus one row per schedule, byte-stable for the same input.
	ExportCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error)
	// SendReminders emails the owning family member of each selected schedule.
	// Delivery failures are collected per recipient; the batch never aborts.
	SendReminders(ctx context.Context, ids []uuid.UUID) (*ReminderSummary, error)
}

// ScheduleReport is a schedule row with the derived payment fields.
type ScheduleReport struct {
	Schedule      model.Schedule  `json:"schedule"`
	Duration      string          `json:"duration"` // HH:MM
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Status        ScheduleStatus  `json:"status"`
}

// ReminderSummary reports the outcome of a reminder batch.
type ReminderSummary struct {
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"` // no family email on file
	Failed  []string `json:"failed,omitempty"`
}

type backofficeService struct {
	scheduleRepo repository.ScheduleRepository
	mailer       mail.Mailer
	now          func() time.Time
}

// NewBackofficeService creates a new back-office service.
func NewBackofficeService(scheduleRepo repository.ScheduleRepository, mailer mail.Mailer) BackofficeService {
	return &backofficeService{
		scheduleRepo: scheduleRepo,
		mailer:       mailer,
		now:          time.Now,
	}
}

// ParseClock parses an HH:MM wall-clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DurationMinutes returns the whole-minute span between two HH:MM times on
// the same date. Schedules are validated so end is always after start.
func DurationMinutes(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// FormatDuration renders whole minutes as HH:MM.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EstimatedCost computes minutes/60 * rate in decimal arithmetic, rounded
// half-up to 2 places. Binary floats never touch currency values.
func EstimatedCost(minutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return hourlyRate.
		Mul(decimal.NewFromInt(int64(minutes))).
		Div(decimal.NewFromInt(60)).
		Round(2)
}

// ClassifySchedule compares the schedule date against today, date precision
// only. The three cases are exhaustive.
func ClassifySchedule(date, today time.Time) ScheduleStatus {
	dy, dm, dd := date.Date()
	ty, tm, td := today.Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	switch {
	case d.Before(t):
		return StatusPast
	case d.Equal(t):
		return StatusToday
	default:
		return StatusUpcoming
	}
}

func buildReport(s model.Schedule, today time.Time) (ScheduleReport, error) {
	minutes, err := DurationMinutes(s.StartTime, s.EndTime)
	if err != nil {
		return ScheduleReport{}, err
	}
	return ScheduleReport{
		Schedule:      s,
		Duration:      FormatDuration(minutes),
		EstimatedCost: EstimatedCost(minutes, s.HourlyRate),
		Status:        ClassifySchedule(s.Date, today),
	}, nil
}

func (s *backofficeService) ListReports(ctx context.Context) ([]ScheduleReport, error) {
	schedules, err := s.scheduleRepo.List(ctx, strategy.AllSchedules{})
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	today := s.now()
	reports := make([]ScheduleReport, 0, len(schedules))
	for _, sch := range schedules {
		report, err := buildReport(sch, today)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *backofficeService) AdjustRates(ctx context.Context, ids []uuid.UUID, increase bool) (int, error) {
	factor := rateDecreaseFactor
	if increase {
		factor = rateIncreaseFactor
	}

	schedules, err := s.scheduleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("resolve schedules: %w", err)
	}

	updated := 0
	for _, sch := range schedules {
		newRate := sch.HourlyRate.Mul(factor).Round(2)
		if err := s.scheduleRepo.UpdateRate(ctx, sch.ID, newRate); err != nil {
			return updated, fmt.Errorf("update rate for %s: %w", sch.ID, err)
		}
		updated++
	}
	return updated, nil
}

func (s *backofficeService) ExportCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	schedules, err := s.scheduleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve schedules: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, sch := range schedules {
		minutes, err := DurationMinutes(sch.StartTime, sch.EndTime)
		if err != nil {
			return nil, err
		}
		record := []string{
			sch.Elderly.Name,
			sch.Date.Format("2006-01-02"),
			sch.StartTime,
			sch.EndTime,
			FormatDuration(minutes),
			sch.HourlyRate.StringFixed(2),
			EstimatedCost(minutes, sch.HourlyRate).StringFixed(2),
			sch.Location,
			sch.TaskList,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *backofficeService) SendReminders(ctx context.Context, ids []uuid.UUID) (*ReminderSummary, error) {
	schedules, err := s.scheduleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve schedules: %w", err)
	}

	summary := &ReminderSummary{}
	for _, sch := range schedules {
		to := sch.Elderly.FamilyMember.Email
		if to == "" {
			summary.Skipped++
			continue
		}

		minutes, err := DurationMinutes(sch.StartTime, sch.EndTime)
		if err != nil {
			summary.Failed = append(summary.Failed, fmt.Sprintf("%s: %v", to, err))
			continue
		}

		subject := fmt.Sprintf("Care schedule reminder for %s", sch.Elderly.Name)
		body := fmt.Sprintf(
			"Reminder: %s has a care schedule on %s from %s to %s at %s.\nTasks: %s\nEstimated cost: %s",
			sch.Elderly.Name,
			sch.Date.Format("2006-01-02"),
			sch.StartTime,
			sch.EndTime,
			sch.Location,
			sch.TaskList,
			EstimatedCost(minutes, sch.HourlyRate).StringFixed(2),
		)

		if err := s.mailer.Send(ctx, to, subject, body); err != nil {
			// best effort: record and keep going
			log.Printf("reminder to %s failed: %v", to, err)
			summary.Failed = append(summary.Failed, fmt.Sprintf("%s: %v", to, err))
			continue
		}
		summary.Sent++
	}
	return summary, nil
}
