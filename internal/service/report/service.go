package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/report"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/timeutil"
	payrollsvc "github.com/worksite-labs/timeclock-backend-go/internal/service/payroll"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	payroll.PayrollService
	settings.SettingsRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	payrollService payroll.PayrollService,
	settingsRepo settings.SettingsRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		PayrollService:       payrollService,
		SettingsRepository:   settingsRepo,
	}
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, date string) ([]attendance.DayRow, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	rows := make([]attendance.DayRow, 0, len(records))
	for _, rec := range records {
		name := ""
		if rec.WorkerName != nil {
			name = *rec.WorkerName
		}
		rows = append(rows, attendance.DayRow{
			Name:       name,
			CheckIn:    rec.CheckIn,
			CheckOut:   rec.CheckOut,
			TotalHours: rec.TotalHours,
		})
	}
	return rows, nil
}

// Weekly implements report.ReportService.
func (s *ReportServiceImpl) Weekly(ctx context.Context, anchorDate string) ([]payroll.WorkerSummary, error) {
	period, err := weeklyPeriod(anchorDate)
	if err != nil {
		return nil, err
	}
	return s.summarizeRounded(ctx, period)
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, year, month int) ([]payroll.WorkerSummary, error) {
	return s.summarizeRounded(ctx, payrollsvc.MonthPeriod(year, month))
}

// Yearly implements report.ReportService.
func (s *ReportServiceImpl) Yearly(ctx context.Context, year int) ([]payroll.WorkerSummary, error) {
	return s.summarizeRounded(ctx, payrollsvc.YearPeriod(year))
}

// Company implements report.ReportService.
func (s *ReportServiceImpl) Company(ctx context.Context, req report.CompanyReportRequest) (report.CompanyReport, error) {
	if err := req.Validate(); err != nil {
		return report.CompanyReport{}, err
	}

	period, err := periodFor(req)
	if err != nil {
		return report.CompanyReport{}, err
	}

	summaries, err := s.PayrollService.SummarizeAll(ctx, period)
	if err != nil {
		return report.CompanyReport{}, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return report.CompanyReport{}, fmt.Errorf("failed to load settings: %w", err)
	}

	// Every worker counts toward the totals; the listing shows only those
	// with activity in the period.
	active := make([]payroll.WorkerSummary, 0, len(summaries))
	totalHours := 0.0
	totalEarned := decimal.Zero
	totalAdvances := decimal.Zero
	for _, summary := range summaries {
		totalHours += summary.TotalHours
		totalEarned = totalEarned.Add(summary.Earned)
		totalAdvances = totalAdvances.Add(summary.TotalAdvances)
		if summary.Active() {
			active = append(active, summary.Rounded())
		}
	}

	return report.CompanyReport{
		Kind:          req.Kind,
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		CompanyName:   cfg.CompanyName,
		CompanyLogo:   cfg.CompanyLogo,
		Workers:       active,
		TotalHours:    timeutil.Round2(totalHours),
		TotalEarned:   totalEarned.Round(2),
		TotalAdvances: totalAdvances.Round(2),
		TotalNet:      totalEarned.Sub(totalAdvances).Round(2),
	}, nil
}

func (s *ReportServiceImpl) summarizeRounded(ctx context.Context, period payroll.Period) ([]payroll.WorkerSummary, error) {
	summaries, err := s.PayrollService.SummarizeAll(ctx, period)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i] = summaries[i].Rounded()
	}
	return summaries, nil
}

func periodFor(req report.CompanyReportRequest) (payroll.Period, error) {
	switch report.Kind(req.Kind) {
	case report.KindDaily:
		return payroll.Period{Start: req.Date, End: req.Date}, nil
	case report.KindWeekly:
		return weeklyPeriod(req.Date)
	case report.KindMonthly:
		return payrollsvc.MonthPeriod(req.Year, req.Month), nil
	case report.KindYearly:
		return payrollsvc.YearPeriod(req.Year), nil
	default:
		return payroll.Period{}, fmt.Errorf("unknown report type %q", req.Kind)
	}
}

// weeklyPeriod is the trailing 7-day window ending on the anchor date.
func weeklyPeriod(anchorDate string) (payroll.Period, error) {
	anchor, err := time.Parse("2006-01-02", anchorDate)
	if err != nil {
		return payroll.Period{}, fmt.Errorf("invalid date: %w", err)
	}
	return payroll.Period{
		Start: anchor.AddDate(0, 0, -6).Format("2006-01-02"),
		End:   anchor.Format("2006-01-02"),
	}, nil
}
