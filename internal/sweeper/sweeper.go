// Package sweeper closes promotions whose usage cap has been reached.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

type Expirer interface {
	ExpireExhausted(ctx context.Context) (int64, error)
}

type Observer interface {
	ObserveSweep(expired int64)
}

type Sweeper struct {
	promos   Expirer
	observer Observer
	interval time.Duration
}

func New(promos Expirer, observer Observer, interval time.Duration) *Sweeper {
	return &Sweeper{
		promos:   promos,
		observer: observer,
		interval: interval,
	}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	zap.L().Info("promotion sweeper started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("promotion sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	n, err := s.promos.ExpireExhausted(ctx)
	if err != nil {
		if ctx.Err() == nil {
			zap.L().Error("failed to expire exhausted promotions", zap.Error(err))
		}
		return
	}
	s.observer.ObserveSweep(n)
	if n > 0 {
		zap.L().Info("expired exhausted promotions", zap.Int64("count", n))
	}
}
