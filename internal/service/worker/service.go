package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/timeutil"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	attendance.AttendanceRepository
	settings.SettingsRepository
}

func NewWorkerService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo settings.SettingsRepository,
) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository:     workerRepo,
		AttendanceRepository: attendanceRepo,
		SettingsRepository:   settingsRepo,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	rate := decimal.Zero
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}
	if !rate.IsPositive() {
		cfg, err := s.SettingsRepository.Get(ctx)
		if err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to load settings: %w", err)
		}
		rate = cfg.HourlyRate
	}

	jobTitle := req.JobTitle
	if jobTitle == "" {
		jobTitle = worker.DefaultJobTitle
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Age:        req.Age,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		HireDate:   req.HireDate,
		Photo:      req.Photo,
		HourlyRate: rate,
		JobTitle:   jobTitle,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToWorkerResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToWorkerResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return toResponses(workers), nil
}

// ListDrivers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListDrivers(ctx context.Context) ([]worker.WorkerResponse, error) {
	drivers, err := s.WorkerRepository.ListByJobTitle(ctx, worker.JobTitleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return toResponses(drivers), nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.WorkerRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.WorkerRepository.Delete(ctx, id)
}

// PeriodReport implements worker.WorkerService.
func (s *WorkerServiceImpl) PeriodReport(ctx context.Context, id, period string) (worker.PeriodReportResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, id); err != nil {
		return worker.PeriodReportResponse{}, err
	}

	start, end, err := reportPeriod(time.Now(), period)
	if err != nil {
		return worker.PeriodReportResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByWorkerAndRange(ctx, id, start, end)
	if err != nil {
		return worker.PeriodReportResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	rows := make([]attendance.RecordResponse, 0, len(records))
	totalHours := 0.0
	daysWorked := 0
	for _, rec := range records {
		rows = append(rows, attendance.ToRecordResponse(rec))
		totalHours += rec.TotalHours
		if rec.CheckIn != nil {
			daysWorked++
		}
	}

	return worker.PeriodReportResponse{
		Attendance: rows,
		Summary: worker.PeriodReportSummary{
			TotalHours: timeutil.Round2(totalHours),
			DaysWorked: daysWorked,
		},
	}, nil
}

// reportPeriod anchors the range to the calendar period containing now:
// today, the first of the current month, or January 1st of the current year.
func reportPeriod(now time.Time, period string) (start, end string, err error) {
	end = now.Format("2006-01-02")
	switch period {
	case "daily":
		start = end
	case "monthly":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	case "yearly":
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	default:
		return "", "", fmt.Errorf("unknown report period %q", period)
	}
	return start, end, nil
}

func toResponses(workers []worker.Worker) []worker.WorkerResponse {
	out := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, worker.ToWorkerResponse(w))
	}
	return out
}
