package advance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

type AdvanceServiceImpl struct {
	advance.AdvanceRepository
	worker.WorkerRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, workerRepo worker.WorkerRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		AdvanceRepository: advanceRepo,
		WorkerRepository:  workerRepo,
	}
}

// Create implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	created, err := s.AdvanceRepository.Create(ctx, advance.Advance{
		ID:       uuid.NewString(),
		WorkerID: req.WorkerID,
		Amount:   req.Amount,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return advance.ToAdvanceResponse(created), nil
}

// ListByWorker implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.AdvanceResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	advances, err := s.AdvanceRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	out := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		out = append(out, advance.ToAdvanceResponse(a))
	}
	return out, nil
}

// TotalInRange implements advance.AdvanceService.
func (s *AdvanceServiceImpl) TotalInRange(ctx context.Context, workerID, start, end string) (decimal.Decimal, error) {
	total, err := s.AdvanceRepository.TotalInRange(ctx, workerID, start, end)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to total advances: %w", err)
	}
	return total, nil
}
