package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

func newTestService(t *testing.T, keep int) (*Service, string) {
	t.Helper()

	tmp := t.TempDir()
	db, err := database.NewSQLiteDB(filepath.Join(tmp, "live.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema(context.Background()))

	dir := filepath.Join(tmp, "backups")
	return NewService(db, dir, keep), dir
}

func TestCreateWritesSnapshot(t *testing.T) {
	svc, dir := newTestService(t, 10)

	b, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Greater(t, b.Size, int64(0))

	info, err := os.Stat(filepath.Join(dir, b.Name))
	require.NoError(t, err)
	assert.Equal(t, b.Size, info.Size())
}

func TestListNewestFirst(t *testing.T) {
	svc, dir := newTestService(t, 10)
	ctx := context.Background()

	first, err := svc.Create(ctx)
	require.NoError(t, err)
	second, err := svc.Create(ctx)
	require.NoError(t, err)

	// Force distinct mod times; back-to-back snapshots can share one.
	now := time.Now()
	require.NoError(t, os.Chtimes(filepath.Join(dir, first.Name), now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(dir, second.Name), now, now))

	backups, err := svc.List()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, second.Name, backups[0].Name)
	assert.Equal(t, first.Name, backups[1].Name)
}

func TestListEmptyDir(t *testing.T) {
	svc, _ := newTestService(t, 10)

	backups, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestPruneKeepsNewest(t *testing.T) {
	svc, dir := newTestService(t, 2)
	ctx := context.Background()

	var names []string
	for i := 0; i < 4; i++ {
		b, err := svc.Create(ctx)
		require.NoError(t, err)
		names = append(names, b.Name)
		ts := time.Now().Add(time.Duration(i-4) * time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(dir, b.Name), ts, ts))
	}

	require.NoError(t, svc.Prune())

	backups, err := svc.List()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, names[3], backups[0].Name)
	assert.Equal(t, names[2], backups[1].Name)
}

func TestRestoreRejectsPathEscape(t *testing.T) {
	svc, _ := newTestService(t, 10)

	assert.Error(t, svc.Restore("../live.db"))
	assert.Error(t, svc.Restore("notabackup.db"))
}

func TestRestoreCopiesSnapshot(t *testing.T) {
	tmp := t.TempDir()
	livePath := filepath.Join(tmp, "live.db")
	db, err := database.NewSQLiteDB(livePath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema(context.Background()))

	svc := NewService(db, filepath.Join(tmp, "backups"), 10)
	b, err := svc.Create(context.Background())
	require.NoError(t, err)

	// Corrupt the live file, then restore.
	require.NoError(t, os.WriteFile(livePath, []byte("garbage"), 0o644))
	require.NoError(t, svc.Restore(b.Name))

	restored, err := os.ReadFile(livePath)
	require.NoError(t, err)
	assert.Greater(t, len(restored), len("garbage"))
}
