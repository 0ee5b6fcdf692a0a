package worker

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

type fakeWorkerRepo struct {
	worker.WorkerRepository
	workers map[string]worker.Worker
	deleted []string
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	for _, existing := range f.workers {
		if existing.NationalID == w.NationalID {
			return worker.Worker{}, worker.ErrNationalIDExists
		}
	}
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	if w, ok := f.workers[id]; ok {
		return w, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) ListByJobTitle(_ context.Context, jobTitle string) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		if w.JobTitle == jobTitle {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) Delete(_ context.Context, id string) error {
	delete(f.workers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (f *fakeAttendanceRepo) ListByWorkerAndRange(_ context.Context, workerID, start, end string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.WorkerID == workerID && rec.Date >= start && rec.Date <= end {
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

func validCreateRequest() worker.CreateWorkerRequest {
	return worker.CreateWorkerRequest{
		Name:       "Samir",
		Age:        30,
		Phone:      "0123456789",
		NationalID: "1234567890123",
		HireDate:   "2020-01-01",
	}
}

func newTestService(workers *fakeWorkerRepo, records []attendance.Record) worker.WorkerService {
	return NewWorkerService(
		workers,
		&fakeAttendanceRepo{records: records},
		&fakeSettingsRepo{cfg: settings.Settings{HourlyRate: decimal.RequireFromString("50")}},
	)
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, worker.DefaultJobTitle, resp.JobTitle)
	// No rate in the request: the settings default applies.
	assert.True(t, resp.HourlyRate.Equal(decimal.RequireFromString("50")))
}

func TestCreateKeepsExplicitRate(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newTestService(repo, nil)

	req := validCreateRequest()
	rate := decimal.RequireFromString("72.50")
	req.HourlyRate = &rate
	req.JobTitle = worker.JobTitleDriver

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.HourlyRate.Equal(rate))
	assert.Equal(t, worker.JobTitleDriver, resp.JobTitle)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newFakeWorkerRepo(), nil)
	ctx := context.Background()

	req := validCreateRequest()
	req.Age = 12
	_, err := svc.Create(ctx, req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.NationalID = "abc"
	_, err = svc.Create(ctx, req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.HireDate = "01/01/2020"
	_, err = svc.Create(ctx, req)
	assert.Error(t, err)
}

func TestCreateDuplicateNationalID(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, worker.ErrNationalIDExists)
}

func TestDeleteMissingWorker(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	assert.Empty(t, repo.deleted)
}

func TestPeriodReportSummary(t *testing.T) {
	repo := newFakeWorkerRepo()
	repo.workers["w1"] = worker.Worker{ID: "w1", Name: "Samir", HireDate: "2020-01-01"}

	records := []attendance.Record{
		{WorkerID: "w1", Date: "2000-01-01", CheckIn: ptr("08:00:00"), TotalHours: 8},
	}
	svc := newTestService(repo, records)

	// The stored record is far in the past, outside the current month.
	report, err := svc.PeriodReport(context.Background(), "w1", "monthly")
	require.NoError(t, err)
	assert.Empty(t, report.Attendance)
	assert.Equal(t, 0, report.Summary.DaysWorked)
	assert.Equal(t, 0.0, report.Summary.TotalHours)
}

func TestReportPeriodAnchorsToCalendarStart(t *testing.T) {
	now := time.Date(2025, time.June, 16, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		start  string
		end    string
	}{
		{"daily", "2025-06-16", "2025-06-16"},
		{"monthly", "2025-06-01", "2025-06-16"},
		{"yearly", "2025-01-01", "2025-06-16"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := reportPeriod(now, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}

	_, _, err := reportPeriod(now, "quarterly")
	assert.Error(t, err)
}

func TestPeriodReportUnknownPeriod(t *testing.T) {
	repo := newFakeWorkerRepo()
	repo.workers["w1"] = worker.Worker{ID: "w1", Name: "Samir"}
	svc := newTestService(repo, nil)

	_, err := svc.PeriodReport(context.Background(), "w1", "quarterly")
	assert.Error(t, err)
}
