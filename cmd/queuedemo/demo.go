package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xyhelper/boundedqueue/blockingqueue"
)

const consumerPops = 3

// run drives the producer and consumer until both finish or ctx ends.
func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	q := blockingqueue.New[int](cfg.capacity)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return errors.Wrap(produce(ctx, q, cfg, logger.Named("producer")), "producer")
	})
	g.Go(func() error {
		return errors.Wrap(consume(ctx, q, cfg, logger.Named("consumer")), "consumer")
	})
	err := g.Wait()

	s := q.Stats()
	logger.Info("done",
		zap.Uint64("pushed", s.Pushed),
		zap.Uint64("popped", s.Popped),
		zap.Uint64("dropped", s.Dropped),
		zap.Uint64("timeouts", s.Timeouts),
		zap.Stringer("queue", q),
	)
	return err
}

func produce(ctx context.Context, q *blockingqueue.Queue[int], cfg config, logger *zap.Logger) error {
	push := func(v int) {
		q.Push(v)
		logger.Info("push", zap.Int("value", v), zap.Stringer("queue", q), zap.Int("count", q.Count()))
	}

	push(1)
	if err := sleep(ctx, cfg.gap); err != nil {
		return err
	}
	push(2)
	push(3)
	push(4)
	// The consumer's indefinite pops block until this last push.
	if err := sleep(ctx, cfg.pause); err != nil {
		return err
	}
	push(5)
	return nil
}

func consume(ctx context.Context, q *blockingqueue.Queue[int], cfg config, logger *zap.Logger) error {
	v, err := q.PopWithTimeout(cfg.timeout)
	switch {
	case blockingqueue.IsTimeout(err):
		logger.Warn("timed pop expired", zap.Duration("timeout", cfg.timeout), zap.Error(err))
	case err != nil:
		return err
	default:
		logger.Info("pop", zap.Int("value", v), zap.Stringer("queue", q), zap.Int("count", q.Count()))
	}

	for i := 0; i < consumerPops; i++ {
		v, err := q.PopContext(ctx)
		if err != nil {
			return err
		}
		logger.Info("pop", zap.Int("value", v), zap.Stringer("queue", q), zap.Int("count", q.Count()))
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
