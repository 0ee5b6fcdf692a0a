package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

// Friday is the fixed weekly day off; no other holidays are modeled.
const weeklyDayOff = time.Friday

type PayrollServiceImpl struct {
	worker.WorkerRepository
	attendance.AttendanceRepository
	advance.AdvanceRepository
	settings.SettingsRepository
}

func NewPayrollService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	settingsRepo settings.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		WorkerRepository:     workerRepo,
		AttendanceRepository: attendanceRepo,
		AdvanceRepository:    advanceRepo,
		SettingsRepository:   settingsRepo,
	}
}

// Summarize implements payroll.PayrollService.
func (s *PayrollServiceImpl) Summarize(ctx context.Context, workerID string, period payroll.Period) (payroll.WorkerSummary, error) {
	w, err := s.WorkerRepository.GetByID(ctx, workerID)
	if err != nil {
		return payroll.WorkerSummary{}, err
	}

	defaultRate, err := s.defaultHourlyRate(ctx)
	if err != nil {
		return payroll.WorkerSummary{}, err
	}

	return s.summarizeWorker(ctx, w, period, defaultRate)
}

// SummarizeAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) SummarizeAll(ctx context.Context, period payroll.Period) ([]payroll.WorkerSummary, error) {
	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	defaultRate, err := s.defaultHourlyRate(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]payroll.WorkerSummary, 0, len(workers))
	for _, w := range workers {
		summary, err := s.summarizeWorker(ctx, w, period, defaultRate)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// FullReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) FullReport(ctx context.Context, workerID string, year, month int) (payroll.FullReportResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, workerID)
	if err != nil {
		return payroll.FullReportResponse{}, err
	}

	period := MonthPeriod(year, month)

	defaultRate, err := s.defaultHourlyRate(ctx)
	if err != nil {
		return payroll.FullReportResponse{}, err
	}

	summary, err := s.summarizeWorker(ctx, w, period, defaultRate)
	if err != nil {
		return payroll.FullReportResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByWorkerAndRange(ctx, workerID, period.Start, period.End)
	if err != nil {
		return payroll.FullReportResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	attendanceRows := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		attendanceRows = append(attendanceRows, attendance.ToRecordResponse(rec))
	}

	advances, err := s.AdvanceRepository.ListByWorkerAndRange(ctx, workerID, period.Start, period.End)
	if err != nil {
		return payroll.FullReportResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}
	advanceRows := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		advanceRows = append(advanceRows, advance.ToAdvanceResponse(a))
	}

	return payroll.FullReportResponse{
		Worker:      worker.ToWorkerResponse(w),
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Summary:     summary.Rounded(),
		Attendance:  attendanceRows,
		Advances:    advanceRows,
	}, nil
}

func (s *PayrollServiceImpl) summarizeWorker(ctx context.Context, w worker.Worker, period payroll.Period, defaultRate decimal.Decimal) (payroll.WorkerSummary, error) {
	records, err := s.AttendanceRepository.ListByWorkerAndRange(ctx, w.ID, period.Start, period.End)
	if err != nil {
		return payroll.WorkerSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	// Records are unique per (worker, date), so present days are simply the
	// rows carrying a check-in. Bonus-only rows contribute hours but no
	// presence.
	daysPresent := 0
	totalHours := 0.0
	for _, rec := range records {
		if rec.CheckIn != nil {
			daysPresent++
		}
		totalHours += rec.TotalHours
	}

	start, err := time.Parse("2006-01-02", period.Start)
	if err != nil {
		return payroll.WorkerSummary{}, fmt.Errorf("invalid period start: %w", err)
	}
	end, err := time.Parse("2006-01-02", period.End)
	if err != nil {
		return payroll.WorkerSummary{}, fmt.Errorf("invalid period end: %w", err)
	}
	hireDate, err := time.Parse("2006-01-02", w.HireDate)
	if err != nil {
		return payroll.WorkerSummary{}, fmt.Errorf("invalid hire date for worker %s: %w", w.ID, err)
	}

	workable := workableDays(start, end, hireDate)
	daysAbsent := workable - daysPresent
	if daysAbsent < 0 {
		daysAbsent = 0
	}

	rate := w.HourlyRate
	if !rate.IsPositive() {
		rate = defaultRate
	}

	totalAdvances, err := s.AdvanceRepository.TotalInRange(ctx, w.ID, period.Start, period.End)
	if err != nil {
		return payroll.WorkerSummary{}, fmt.Errorf("failed to total advances: %w", err)
	}

	earned := decimal.NewFromFloat(totalHours).Mul(rate)

	return payroll.WorkerSummary{
		WorkerID:      w.ID,
		Name:          w.Name,
		JobTitle:      w.JobTitle,
		HourlyRate:    rate,
		DaysPresent:   daysPresent,
		DaysAbsent:    daysAbsent,
		TotalHours:    totalHours,
		Earned:        earned,
		TotalAdvances: totalAdvances,
		NetAmount:     earned.Sub(totalAdvances),
	}, nil
}

func (s *PayrollServiceImpl) defaultHourlyRate(ctx context.Context) (decimal.Decimal, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg.HourlyRate, nil
}

// workableDays counts the calendar days in [max(start, hireDate), end] whose
// weekday is not the weekly day off. Days before the hire date never count
// toward expected attendance.
func workableDays(start, end, hireDate time.Time) int {
	if hireDate.After(start) {
		start = hireDate
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != weeklyDayOff {
			days++
		}
	}
	return days
}

// MonthPeriod returns the inclusive range covering a full calendar month.
func MonthPeriod(year, month int) payroll.Period {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return payroll.Period{
		Start: first.Format("2006-01-02"),
		End:   last.Format("2006-01-02"),
	}
}

// YearPeriod returns the inclusive range covering a full calendar year.
func YearPeriod(year int) payroll.Period {
	return payroll.Period{
		Start: fmt.Sprintf("%04d-01-01", year),
		End:   fmt.Sprintf("%04d-12-31", year),
	}
}
