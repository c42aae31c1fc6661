// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/pkg/locker"
)

// DigestScheduler periodically mails the hot-content digest with
// distributed locking so only one instance sends per interval.
type DigestScheduler struct {
	digestService *service.DigestService
	interval      time.Duration
	timeout       time.Duration
	logger        *zap.Logger
	locker        locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// DigestConfig holds digest scheduler configuration.
type DigestConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewDigestScheduler creates a new DigestScheduler with distributed
// locking support.
func NewDigestScheduler(
	digestSvc *service.DigestService,
	cfg DigestConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *DigestScheduler {
	return &DigestScheduler{
		digestService: digestSvc,
		interval:      cfg.Interval,
		timeout:       cfg.Timeout,
		logger:        logger,
		locker:        locker,
	}
}

// Start begins the background digest job.
func (s *DigestScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting digest scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *DigestScheduler) Stop() {
	s.logger.Info("stopping digest scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("digest scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *DigestScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	// Run immediately if configured
	if runOnStartup {
		s.executeDigest()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeDigest()
		}
	}
}

// executeDigest sends one digest under the distributed lock.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval so recipients get at
//     most one digest per interval across all instances
//   - Failure: lock released immediately to allow retry by another instance
func (s *DigestScheduler) executeDigest() {
	const lockKey = "digest:scheduler:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is sending the digest, skipping execution")

		return
	}

	// Lock acquired - send digest with timeout
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	result := s.digestService.SendDigest(ctx)

	if result.Error != nil {
		// Release lock immediately on error (allow immediate retry)
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after digest error", zap.Error(err))
		}
		s.logger.Warn("digest failed, lock released for retry",
			zap.Error(result.Error),
			zap.Duration("duration", result.Duration),
		)

		return
	}

	// Lock will expire naturally after interval (cooldown period)
	s.logger.Info("digest completed, lock held for cooldown",
		zap.Int("items", result.Items),
		zap.Duration("cooldown", s.interval),
	)
}
