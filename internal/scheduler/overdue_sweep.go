// Package scheduler holds the background jobs run by gocron.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
	"github.com/vfg2006/verity-api/pkg/utils"
)

type OverdueSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SweepResult counts what one sweep did.
type SweepResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

type OverdueSweepService struct {
	scheduler           *gocron.Scheduler
	invoiceRepo         repository.InvoiceRepository
	config              OverdueSweepConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          SweepResult
}

func NewOverdueSweepService(invoiceRepo repository.InvoiceRepository, cfg *config.Config) *OverdueSweepService {
	sweepConfig := OverdueSweepConfig{
		CronSchedule: cfg.OverdueSweep.CronSchedule,
		SyncEnabled:  cfg.OverdueSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"enabled":       sweepConfig.SyncEnabled,
	}).Info("Overdue sweep scheduler configuration loaded")

	return &OverdueSweepService{
		scheduler:   gocron.NewScheduler(time.UTC),
		invoiceRepo: invoiceRepo,
		config:      sweepConfig,
		now:         time.Now,
	}
}

func (s *OverdueSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Overdue sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting overdue sweep cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sweep(ctx); err != nil {
			logrus.WithError(err).Error("Overdue sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping overdue sweep cron")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep marks pending invoices whose due date has passed as overdue. A failed update is
// logged and counted, and the sweep continues with the next invoice.
func (s *OverdueSweepService) Sweep(ctx context.Context) (SweepResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Overdue sweep already running")
		return SweepResult{}, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var result SweepResult
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	now := s.now()
	invoices, err := s.invoiceRepo.ListInvoicesDueBefore(ctx, domain.InvoiceStatusPending, utils.StartOfDay(now))
	if err != nil {
		return result, fmt.Errorf("failed to list pending invoices: %w", err)
	}

	for _, invoice := range invoices {
		result.Checked++

		previous := invoice.Status
		if resolving.RecomputeInvoiceStatus(invoice, now) == previous {
			continue
		}

		if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoice.BusinessID, invoice.ID, invoice.Status); err != nil {
			result.Failed++
			logrus.WithFields(logrus.Fields{
				"business_id": invoice.BusinessID,
				"invoice_id":  invoice.ID,
			}).WithError(err).Error("Failed to update invoice status")
			continue
		}
		result.Updated++
	}

	logrus.WithFields(logrus.Fields{
		"checked": result.Checked,
		"updated": result.Updated,
		"failed":  result.Failed,
	}).Info("Overdue sweep finished")

	return result, nil
}

// TriggerManualSync starts a sweep in the background unless one is already running.
func (s *OverdueSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Overdue sweep already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual overdue sweep")
	go func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			logrus.WithError(err).Error("Manual overdue sweep failed")
		}
	}()
}

func (s *OverdueSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
