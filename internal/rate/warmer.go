package rate

import (
	"context"
	"time"

	"vpsworth/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Warmer periodically re-resolves a configured set of pairs so the cache
// stays inside the freshness window for the pairs users actually request.
type Warmer struct {
	resolver *Resolver
	pairs    []domain.CurrencyPair
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func (w *Warmer) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	w.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		w.warmOnce(jobCtx, execID)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := w.Shutdown(); sdErr != nil {
			logrus.Errorf("Warmer shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (w *Warmer) warmOnce(ctx context.Context, execID string) {
	for _, pair := range w.pairs {
		res, err := w.resolver.Resolve(ctx, pair.From, pair.To)
		if err != nil {
			logrus.Warnf("Warmer %s: pair %s failed: %v", execID, pair.Key(), err)
			continue
		}
		if res.Degraded {
			logrus.Warnf("Warmer %s: pair %s only available stale", execID, pair.Key())
		}
	}
	logrus.Infof("Warmer run %s finished for %d pairs", execID, len(w.pairs))
}

func (w *Warmer) Shutdown() error {
	if w.sched == nil {
		return nil
	}
	err := w.sched.Shutdown()
	w.sched = nil
	return err
}

func NewWarmer(resolver *Resolver, pairs []domain.CurrencyPair, interval time.Duration) *Warmer {
	return &Warmer{resolver: resolver, pairs: pairs, interval: interval}
}
