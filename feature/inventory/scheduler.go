package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// snapshotTimeout bounds a single scheduled export.
const snapshotTimeout = 2 * time.Minute

// Scheduler stores export snapshots on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *zap.Logger
}

// NewScheduler registers the snapshot job. schedule is a standard five-field
// cron expression.
func NewScheduler(schedule string, service *Service, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.snapshot); err != nil {
		return nil, fmt.Errorf("invalid export schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("Starting export scheduler")
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running snapshot.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping export scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	key, err := s.service.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Export snapshot failed", zap.Error(err))
		return
	}
	s.logger.Info("Export snapshot done", zap.String("key", key))
}
