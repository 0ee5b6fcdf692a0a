package advance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

type fakeAdvanceRepo struct {
	advance.AdvanceRepository
	advances []advance.Advance
}

func (f *fakeAdvanceRepo) Create(_ context.Context, a advance.Advance) (advance.Advance, error) {
	f.advances = append(f.advances, a)
	return a, nil
}

func (f *fakeAdvanceRepo) ListByWorker(_ context.Context, workerID string) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, a := range f.advances {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdvanceRepo) TotalInRange(_ context.Context, workerID, start, end string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range f.advances {
		if a.WorkerID == workerID && a.Date >= start && a.Date <= end {
			total = total.Add(a.Amount)
		}
	}
	return total, nil
}

type fakeWorkerRepo struct {
	worker.WorkerRepository
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	if w, ok := f.workers[id]; ok {
		return w, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func newTestService(repo *fakeAdvanceRepo) advance.AdvanceService {
	workers := &fakeWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", Name: "Samir"},
	}}
	return NewAdvanceService(repo, workers)
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateAssignsID(t *testing.T) {
	repo := &fakeAdvanceRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		WorkerID: "w1",
		Amount:   money("250"),
		Date:     "2025-06-10",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Amount.Equal(money("250")))
	require.Len(t, repo.advances, 1)
}

func TestCreateUnknownWorker(t *testing.T) {
	repo := &fakeAdvanceRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		WorkerID: "ghost",
		Amount:   money("100"),
		Date:     "2025-06-10",
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	assert.Empty(t, repo.advances)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(&fakeAdvanceRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, advance.CreateAdvanceRequest{WorkerID: "w1", Amount: money("0"), Date: "2025-06-10"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{WorkerID: "w1", Amount: money("-10"), Date: "2025-06-10"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{WorkerID: "w1", Amount: money("50"), Date: "10/06/2025"})
	assert.Error(t, err)
}

func TestListByWorkerUnknownWorker(t *testing.T) {
	svc := newTestService(&fakeAdvanceRepo{})

	_, err := svc.ListByWorker(context.Background(), "ghost")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestTotalInRange(t *testing.T) {
	repo := &fakeAdvanceRepo{advances: []advance.Advance{
		{ID: "a1", WorkerID: "w1", Amount: money("100.25"), Date: "2025-06-02"},
		{ID: "a2", WorkerID: "w1", Amount: money("25"), Date: "2025-06-20"},
		{ID: "a3", WorkerID: "w1", Amount: money("999"), Date: "2025-07-01"},
	}}
	svc := newTestService(repo)

	total, err := svc.TotalInRange(context.Background(), "w1", "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.True(t, total.Equal(money("125.25")))
}
