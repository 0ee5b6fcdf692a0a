package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/trip"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

type TripServiceImpl struct {
	trip.TripRepository
	worker.WorkerRepository
}

func NewTripService(tripRepo trip.TripRepository, workerRepo worker.WorkerRepository) trip.TripService {
	return &TripServiceImpl{
		TripRepository:   tripRepo,
		WorkerRepository: workerRepo,
	}
}

// Record implements trip.TripService.
func (s *TripServiceImpl) Record(ctx context.Context, req trip.RecordTripRequest) (trip.TripResponse, error) {
	if err := req.Validate(); err != nil {
		return trip.TripResponse{}, err
	}

	if err := s.requireDriver(ctx, req.DriverID); err != nil {
		return trip.TripResponse{}, err
	}

	created, err := s.TripRepository.Create(ctx, trip.Trip{
		ID:            uuid.NewString(),
		WorkerID:      req.DriverID,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Date:          req.Date,
		Notes:         req.Notes,
	})
	if err != nil {
		return trip.TripResponse{}, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip.ToTripResponse(created), nil
}

// Today implements trip.TripService.
func (s *TripServiceImpl) Today(ctx context.Context, driverID string) ([]trip.TripResponse, error) {
	if err := s.requireDriver(ctx, driverID); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	trips, err := s.TripRepository.ListByDriverAndDate(ctx, driverID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	out := make([]trip.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, trip.ToTripResponse(t))
	}
	return out, nil
}

func (s *TripServiceImpl) requireDriver(ctx context.Context, driverID string) error {
	w, err := s.WorkerRepository.GetByID(ctx, driverID)
	if err != nil {
		return err
	}
	if w.JobTitle != worker.JobTitleDriver {
		return worker.ErrNotADriver
	}
	return nil
}
