// Package scheduler runs the nightly snapshot job that copies the local
// dataset into dated backup bundles.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/databases"
)

// Scheduler handles periodic background jobs for the local backend
type Scheduler struct {
	cron      *cron.Cron
	Local     *databases.LocalStore
	BackupDir string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(local *databases.LocalStore, backupDir string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		Local:     local,
		BackupDir: backupDir,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Snapshot the local dataset nightly at 2 AM UTC
	_, err := s.cron.AddFunc("0 2 * * *", func() {
		if err := s.RunSnapshot(); err != nil {
			zap.S().Errorw("nightly snapshot failed", "error", err)
		}
	})
	if err != nil {
		zap.S().Errorw("failed to register snapshot job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("backup scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("backup scheduler stopped")
}

// RunSnapshot writes the current local dataset to a dated bundle under the
// backup directory. Re-running on the same day overwrites that day's file.
func (s *Scheduler) RunSnapshot() error {
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	bundle, err := s.Local.ExportData(context.Background())
	if err != nil {
		return fmt.Errorf("reading local data: %w", err)
	}

	b, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	name := fmt.Sprintf("backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	path := filepath.Join(s.BackupDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	zap.S().Infow("snapshot written", "path", path, "cases", len(bundle.Cases))
	return nil
}
