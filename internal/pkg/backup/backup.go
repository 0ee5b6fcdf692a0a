package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/cron"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

const filePrefix = "backup-"

// Backup describes one snapshot file in the backups directory.
type Backup struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Service snapshots the live database file into a backups directory and
// prunes old snapshots past the retention count.
type Service struct {
	db   *database.DB
	dir  string
	keep int
}

func NewService(db *database.DB, dir string, keep int) *Service {
	return &Service{db: db, dir: dir, keep: keep}
}

// RegisterJobs puts the periodic snapshot on the scheduler.
func (s *Service) RegisterJobs(scheduler *cron.Scheduler, interval time.Duration) {
	scheduler.AddJob("database_backup", interval, s.Run)
}

// Run creates a snapshot and prunes old ones. It is the cron job body.
func (s *Service) Run(ctx context.Context) error {
	b, err := s.Create(ctx)
	if err != nil {
		return err
	}
	slog.Info("Database backup created", "name", b.Name, "size", b.Size)
	return s.Prune()
}

// Create writes a consistent snapshot of the live database. VACUUM INTO
// produces a compacted copy without blocking readers.
func (s *Service) Create(ctx context.Context) (Backup, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Backup{}, fmt.Errorf("failed to create backup dir: %w", err)
	}

	// Nanoseconds keep names unique even for back-to-back snapshots.
	name := filePrefix + time.Now().Format("20060102-150405.000000000") + ".db"
	target := filepath.Join(s.dir, name)

	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, target); err != nil {
		return Backup{}, fmt.Errorf("failed to snapshot database: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return Backup{}, fmt.Errorf("failed to stat backup: %w", err)
	}

	return Backup{Name: name, Size: info.Size(), CreatedAt: info.ModTime()}, nil
}

// List returns the snapshots on disk, newest first.
func (s *Service) List() ([]Backup, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup dir: %w", err)
	}

	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Backup{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

// Restore copies the named snapshot over the live database file. The caller
// is expected to restart the process afterwards; open connections keep
// seeing the pre-restore data.
func (s *Service) Restore(name string) error {
	// Reject anything that could escape the backup directory.
	if name != filepath.Base(name) || !strings.HasPrefix(name, filePrefix) {
		return fmt.Errorf("invalid backup name %q", name)
	}

	source := filepath.Join(s.dir, name)
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer in.Close()

	out, err := os.Create(s.db.Path)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	slog.Info("Database restored from backup", "name", name)
	return nil
}

// Prune deletes the oldest snapshots beyond the retention count.
func (s *Service) Prune() error {
	backups, err := s.List()
	if err != nil {
		return err
	}
	if len(backups) <= s.keep {
		return nil
	}

	for _, b := range backups[s.keep:] {
		if err := os.Remove(filepath.Join(s.dir, b.Name)); err != nil {
			return fmt.Errorf("failed to prune backup %s: %w", b.Name, err)
		}
		slog.Info("Pruned old backup", "name", b.Name)
	}
	return nil
}
