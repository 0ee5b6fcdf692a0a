package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/report"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
)

type fakePayrollService struct {
	payroll.PayrollService
	summaries  []payroll.WorkerSummary
	lastPeriod payroll.Period
}

func (f *fakePayrollService) SummarizeAll(_ context.Context, period payroll.Period) ([]payroll.WorkerSummary, error) {
	f.lastPeriod = period
	return f.summaries, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings.SettingsRepository
	cfg settings.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	return f.cfg, nil
}

func ptr(s string) *string { return &s }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDailyReport(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		{WorkerID: "w1", Date: "2025-06-02", CheckIn: ptr("08:00:00"), CheckOut: ptr("16:00:00"), TotalHours: 8, WorkerName: ptr("Samir")},
		{WorkerID: "w2", Date: "2025-06-03", CheckIn: ptr("09:00:00"), TotalHours: 0, WorkerName: ptr("Karim")},
	}}
	svc := NewReportService(repo, &fakePayrollService{}, &fakeSettingsRepo{})

	rows, err := svc.Daily(context.Background(), "2025-06-02")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Samir", rows[0].Name)
	assert.Equal(t, 8.0, rows[0].TotalHours)
}

func TestWeeklyWindowIsTrailingSevenDays(t *testing.T) {
	fake := &fakePayrollService{}
	svc := NewReportService(&fakeAttendanceRepo{}, fake, &fakeSettingsRepo{})

	_, err := svc.Weekly(context.Background(), "2025-06-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-04", fake.lastPeriod.Start)
	assert.Equal(t, "2025-06-10", fake.lastPeriod.End)
}

func TestWeeklyRejectsBadDate(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, &fakePayrollService{}, &fakeSettingsRepo{})
	_, err := svc.Weekly(context.Background(), "10/06/2025")
	assert.Error(t, err)
}

func TestMonthlyPeriod(t *testing.T) {
	fake := &fakePayrollService{}
	svc := NewReportService(&fakeAttendanceRepo{}, fake, &fakeSettingsRepo{})

	_, err := svc.Monthly(context.Background(), 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", fake.lastPeriod.Start)
	assert.Equal(t, "2025-06-30", fake.lastPeriod.End)
}

func TestCompanyReportTotalsIncludeInactiveWorkers(t *testing.T) {
	fake := &fakePayrollService{summaries: []payroll.WorkerSummary{
		{
			WorkerID:   "w1",
			Name:       "Samir",
			TotalHours: 40,
			Earned:     money("2000"),
			NetAmount:  money("2000"),
		},
		{
			// No hours, but an advance: still active.
			WorkerID:      "w2",
			Name:          "Karim",
			TotalAdvances: money("150"),
			NetAmount:     money("-150"),
		},
		{
			// Fully idle: hidden from the listing, folded into totals.
			WorkerID: "w3",
			Name:     "Idle",
		},
	}}
	cfg := settings.Settings{CompanyName: "Worksite Ltd"}
	svc := NewReportService(&fakeAttendanceRepo{}, fake, &fakeSettingsRepo{cfg: cfg})

	got, err := svc.Company(context.Background(), report.CompanyReportRequest{
		Kind: "monthly", Year: 2025, Month: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, "Worksite Ltd", got.CompanyName)
	require.Len(t, got.Workers, 2)
	assert.Equal(t, "w1", got.Workers[0].WorkerID)
	assert.Equal(t, "w2", got.Workers[1].WorkerID)

	assert.Equal(t, 40.0, got.TotalHours)
	assert.True(t, got.TotalEarned.Equal(money("2000")))
	assert.True(t, got.TotalAdvances.Equal(money("150")))
	assert.True(t, got.TotalNet.Equal(money("1850")))
}

func TestCompanyReportRoundsTotalHours(t *testing.T) {
	// 0.1 + 0.2 accumulates binary noise; the report must present 0.3.
	fake := &fakePayrollService{summaries: []payroll.WorkerSummary{
		{WorkerID: "w1", Name: "Samir", TotalHours: 0.1, Earned: money("5")},
		{WorkerID: "w2", Name: "Karim", TotalHours: 0.2, Earned: money("10")},
	}}
	svc := NewReportService(&fakeAttendanceRepo{}, fake, &fakeSettingsRepo{})

	got, err := svc.Company(context.Background(), report.CompanyReportRequest{
		Kind: "monthly", Year: 2025, Month: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.3, got.TotalHours)
}

func TestCompanyReportValidation(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, &fakePayrollService{}, &fakeSettingsRepo{})

	_, err := svc.Company(context.Background(), report.CompanyReportRequest{Kind: "quarterly"})
	assert.Error(t, err)

	_, err = svc.Company(context.Background(), report.CompanyReportRequest{Kind: "monthly", Year: 2025, Month: 13})
	assert.Error(t, err)

	_, err = svc.Company(context.Background(), report.CompanyReportRequest{Kind: "daily", Date: "not-a-date"})
	assert.Error(t, err)
}
