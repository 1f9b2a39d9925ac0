package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/shelfward/shelfward/internal/config"
)

// SubscriptionExpirer downgrades the subscription when its validity window
// has passed.
type SubscriptionExpirer interface {
	ExpireIfDue() (bool, error)
}

// ExpirySweepScheduler periodically checks whether the paid subscription
// has lapsed and drops it back to the free tier.
type ExpirySweepScheduler struct {
	expirer SubscriptionExpirer
	cfg     config.ExpirySweep

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewExpirySweepScheduler creates a new scheduler instance.
func NewExpirySweepScheduler(expirer SubscriptionExpirer, cfg config.ExpirySweep) *ExpirySweepScheduler {
	return &ExpirySweepScheduler{
		expirer: expirer,
		cfg:     cfg,
		cron:    cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if the sweep is enabled.
func (s *ExpirySweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Expiry sweep scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Expiry sweep scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *ExpirySweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Expiry sweep scheduler: stopped")
}

// RunNow triggers an immediate sweep.
func (s *ExpirySweepScheduler) RunNow() {
	go s.runSweep()
}

// IsRunning returns whether the scheduler is active.
func (s *ExpirySweepScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *ExpirySweepScheduler) runSweep() {
	expired, err := s.expirer.ExpireIfDue()
	if err != nil {
		log.Printf("Expiry sweep: check failed: %v", err)
		return
	}
	if expired {
		log.Printf("Expiry sweep: subscription lapsed, reverted to the free tier")
	}
}
