package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Scheduler runs background loops under one cancellable context.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
	logger *zap.Logger
}

// NewScheduler derives the scheduler context from parent.
func NewScheduler(parent context.Context, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{ctx: ctx, cancel: cancel, logger: logger}
}

// Go starts fn in a goroutine. fn must return once its context is done.
func (s *Scheduler) Go(name string, fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("worker started", zap.String("worker", name))
		fn(s.ctx)
		s.logger.Info("worker stopped", zap.String("worker", name))
	}()
}

// Stop cancels every loop and waits for them to return. Safe to call twice.
func (s *Scheduler) Stop() {
	s.once.Do(s.cancel)
	s.wg.Wait()
}
