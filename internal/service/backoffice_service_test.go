package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"careconnect/internal/model"
	"careconnect/internal/strategy"
)

func testSchedule(rate, start, end string) model.Schedule {
	return model.Schedule{
		ID:         uuid.New(),
		ElderlyID:  uuid.New(),
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  start,
		EndTime:    end,
		Location:   "Brookfield",
		TaskList:   "medication,walk",
		HourlyRate: decimal.RequireFromString(rate),
		Elderly: model.ElderlyProfile{
			Name:         "Margaret Holt",
			FamilyMember: model.User{Email: "frank@example.com"},
		},
	}
}

func TestDurationAndCost(t *testing.T) {
	tests := []struct {
		name         string
		start, end   string
		rate         string
		wantDuration string
		wantCost     string
	}{
		{name: "two and a half hours", start: "09:00", end: "11:30", rate: "20.00", wantDuration: "02:30", wantCost: "50.00"},
		{name: "whole hours", start: "14:00", end: "18:00", rate: "25.50", wantDuration: "04:00", wantCost: "102.00"},
		{name: "one minute", start: "09:00", end: "09:01", rate: "60.00", wantDuration: "00:01", wantCost: "1.00"},
		{name: "rounds half up", start: "09:00", end: "09:10", rate: "20.50", wantDuration: "00:10", wantCost: "3.42"},
		{name: "long day", start: "00:00", end: "23:59", rate: "10.00", wantDuration: "23:59", wantCost: "239.83"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := DurationMinutes(tt.start, tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDuration, FormatDuration(minutes))
			assert.Equal(t, tt.wantCost, EstimatedCost(minutes, decimal.RequireFromString(tt.rate)).StringFixed(2))
		})
	}
}

func TestClassifySchedule(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want ScheduleStatus
	}{
		{name: "yesterday", date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), want: StatusPast},
		{name: "same day ignores clock time", date: time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC), want: StatusToday},
		{name: "tomorrow", date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), want: StatusUpcoming},
		{name: "far past", date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), want: StatusPast},
		{name: "far future", date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), want: StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySchedule(tt.date, today))
		})
	}
}

func TestListReports(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer).(*backofficeService)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	past := testSchedule("20.00", "09:00", "11:30")
	past.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	today := testSchedule("25.50", "14:00", "18:00")
	scheduleRepo.On("List", mock.Anything, strategy.AllSchedules{}).
		Return([]model.Schedule{past, today}, nil)

	reports, err := svc.ListReports(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, "02:30", reports[0].Duration)
	assert.Equal(t, "50.00", reports[0].EstimatedCost.StringFixed(2))
	assert.Equal(t, StatusPast, reports[0].Status)
	assert.Equal(t, "04:00", reports[1].Duration)
	assert.Equal(t, "102.00", reports[1].EstimatedCost.StringFixed(2))
	assert.Equal(t, StatusToday, reports[1].Status)
}

func TestAdjustRates(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		increase bool
		want     string
	}{
		{name: "increase by ten percent", rate: "100.00", increase: true, want: "110.00"},
		{name: "decrease by ten percent", rate: "100.00", want: "90.00"},
		{name: "increase rounds to cents", rate: "20.55", increase: true, want: "22.61"},
		{name: "decrease rounds to cents", rate: "20.55", want: "18.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduleRepo := new(MockScheduleRepository)
			mailer := new(MockMailer)
			svc := NewBackofficeService(scheduleRepo, mailer)

			sch := testSchedule(tt.rate, "09:00", "11:30")
			scheduleRepo.On("FindByIDs", mock.Anything, []uuid.UUID{sch.ID}).
				Return([]model.Schedule{sch}, nil)
			scheduleRepo.On("UpdateRate", mock.Anything, sch.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
				return d.StringFixed(2) == tt.want
			})).Return(nil)

			updated, err := svc.AdjustRates(context.Background(), []uuid.UUID{sch.ID}, tt.increase)

			assert.NoError(t, err)
			assert.Equal(t, 1, updated)
			scheduleRepo.AssertExpectations(t)
		})
	}
}

func TestAdjustRates_PerRowRounding(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer)

	first := testSchedule("19.99", "09:00", "11:30")
	second := testSchedule("33.33", "09:00", "11:30")
	ids := []uuid.UUID{first.ID, second.ID}
	scheduleRepo.On("FindByIDs", mock.Anything, ids).
		Return([]model.Schedule{first, second}, nil)
	// each row rounds independently
	scheduleRepo.On("UpdateRate", mock.Anything, first.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.StringFixed(2) == "21.99"
	})).Return(nil)
	scheduleRepo.On("UpdateRate", mock.Anything, second.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.StringFixed(2) == "36.66"
	})).Return(nil)

	updated, err := svc.AdjustRates(context.Background(), ids, true)

	assert.NoError(t, err)
	assert.Equal(t, 2, updated)
	scheduleRepo.AssertExpectations(t)
}

func TestExportCSV(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer)

	sch := testSchedule("20.00", "09:00", "11:30")
	scheduleRepo.On("FindByIDs", mock.Anything, []uuid.UUID{sch.ID}).
		Return([]model.Schedule{sch}, nil)

	payload, err := svc.ExportCSV(context.Background(), []uuid.UUID{sch.ID})
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []string{
		"elderly_name", "date", "start", "end", "duration",
		"hourly_rate", "estimated_cost", "location", "tasks",
	}, records[0])
	assert.Equal(t, []string{
		"Margaret Holt", "2026-09-01", "09:00", "11:30", "02:30",
		"20.00", "50.00", "Brookfield", "medication,walk",
	}, records[1])
}

func TestExportCSV_Deterministic(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer)

	sch := testSchedule("25.50", "14:00", "18:00")
	scheduleRepo.On("FindByIDs", mock.Anything, []uuid.UUID{sch.ID}).
		Return([]model.Schedule{sch}, nil)

	first, err := svc.ExportCSV(context.Background(), []uuid.UUID{sch.ID})
	assert.NoError(t, err)
	second, err := svc.ExportCSV(context.Background(), []uuid.UUID{sch.ID})
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSendReminders(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer)

	delivered := testSchedule("20.00", "09:00", "11:30")
	noEmail := testSchedule("20.00", "09:00", "11:30")
	noEmail.Elderly.FamilyMember.Email = ""
	bounced := testSchedule("20.00", "09:00", "11:30")
	bounced.Elderly.FamilyMember.Email = "bounce@example.com"

	ids := []uuid.UUID{delivered.ID, noEmail.ID, bounced.ID}
	scheduleRepo.On("FindByIDs", mock.Anything, ids).
		Return([]model.Schedule{delivered, noEmail, bounced}, nil)
	mailer.On("Send", mock.Anything, "frank@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	mailer.On("Send", mock.Anything, "bounce@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("mailbox unavailable"))

	summary, err := svc.SendReminders(context.Background(), ids)

	// one failed delivery never aborts the batch
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, summary.Failed, 1)
	assert.Contains(t, summary.Failed[0], "bounce@example.com")
	mailer.AssertExpectations(t)
}

func TestSendReminders_BodyContent(t *testing.T) {
	scheduleRepo := new(MockScheduleRepository)
	mailer := new(MockMailer)
	svc := NewBackofficeService(scheduleRepo, mailer)

	sch := testSchedule("20.00", "09:00", "11:30")
	scheduleRepo.On("FindByIDs", mock.Anything, []uuid.UUID{sch.ID}).
		Return([]model.Schedule{sch}, nil)

	var gotSubject, gotBody string
	mailer.On("Send", mock.Anything, "frank@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			gotSubject = args.String(2)
			gotBody = args.String(3)
		}).Return(nil)

	_, err := svc.SendReminders(context.Background(), []uuid.UUID{sch.ID})

	assert.NoError(t, err)
	assert.Contains(t, gotSubject, "Margaret Holt")
	assert.Contains(t, gotBody, "2026-09-01")
	assert.Contains(t, gotBody, "09:00")
	assert.Contains(t, gotBody, "50.00")
}
