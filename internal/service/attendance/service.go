package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	worker.WorkerRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
	}
}

// RecordEvent implements attendance.AttendanceService.
//
// The load -> transition -> persist sequence is not wrapped in a transaction:
// the deployment is a single kiosk client issuing serialized requests, and
// the store itself serializes writers.
func (s *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.RecordEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordEventResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.RecordEventResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	eventTime := timeutil.FormatTimeOfDay(now)

	rec, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, req.WorkerID, today)
	if err != nil {
		return attendance.RecordEventResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	event := attendance.EventType(req.Type)
	updated, err := attendance.Transition(rec, event, eventTime)
	if err != nil {
		return attendance.RecordEventResponse{}, err
	}

	if rec == nil {
		updated.ID = uuid.NewString()
		updated.WorkerID = req.WorkerID
		updated.Date = today
		if _, err := s.AttendanceRepository.Create(ctx, updated); err != nil {
			return attendance.RecordEventResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
	} else {
		if err := s.AttendanceRepository.Update(ctx, updated); err != nil {
			return attendance.RecordEventResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
	}

	resp := attendance.RecordEventResponse{Success: true, Time: eventTime}
	if event == attendance.EventCheckOut {
		// A zero total on a closed day with check-out textually before
		// check-in means the span was negative and got floored. Kept as-is
		// (kiosk clock skew happens) but worth a trace.
		if updated.TotalHours == 0 && updated.CheckIn != nil && *updated.CheckIn > eventTime {
			slog.Warn("negative attendance span floored to zero",
				"worker_id", req.WorkerID,
				"date", today,
				"check_in", *updated.CheckIn,
				"check_out", eventTime,
			)
		}
		hours := updated.TotalHours
		resp.TotalHours = &hours
	}

	return resp, nil
}

// AddBonus implements attendance.AttendanceService. It deliberately bypasses
// the state machine: hours are added to the day's total whatever state the
// record is in, and a missing record is created with only the total set.
// Calling it twice adds the hours twice.
func (s *AttendanceServiceImpl) AddBonus(ctx context.Context, req attendance.AddBonusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return err
	}

	rec, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, req.WorkerID, req.Date)
	if err != nil {
		return fmt.Errorf("failed to load record for bonus: %w", err)
	}

	if rec == nil {
		_, err := s.AttendanceRepository.Create(ctx, attendance.Record{
			ID:         uuid.NewString(),
			WorkerID:   req.WorkerID,
			Date:       req.Date,
			TotalHours: req.BonusHours,
		})
		if err != nil {
			return fmt.Errorf("failed to create bonus record: %w", err)
		}
		return nil
	}

	rec.TotalHours += req.BonusHours
	if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
		return fmt.Errorf("failed to update bonus hours: %w", err)
	}
	return nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.TodayRow, error) {
	today := time.Now().Format("2006-01-02")
	rows, err := s.AttendanceRepository.TodayOverview(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's overview: %w", err)
	}
	return rows, nil
}

// ResetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResetToday(ctx context.Context) (int64, error) {
	today := time.Now().Format("2006-01-02")
	deleted, err := s.AttendanceRepository.DeleteByDate(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to reset today's attendance: %w", err)
	}
	return deleted, nil
}
