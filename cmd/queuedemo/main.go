// Command queuedemo runs one producer and one consumer goroutine against a
// small drop-oldest blocking queue and logs the queue after every operation.
//
// Usage:
//
//	go run ./cmd/queuedemo -capacity 2 -timeout 80ms -pause 2s
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type config struct {
	capacity int
	timeout  time.Duration // consumer's first, timed pop
	gap      time.Duration // between the first and second push
	pause    time.Duration // before the last push
	dev      bool
}

func (c config) validate() error {
	if c.capacity < 1 {
		return errors.Errorf("capacity must be positive, got %d", c.capacity)
	}
	if c.timeout < 0 || c.gap < 0 || c.pause < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	var cfg config
	flag.IntVar(&cfg.capacity, "capacity", 2, "queue capacity")
	flag.DurationVar(&cfg.timeout, "timeout", 80*time.Millisecond, "timeout of the consumer's first pop")
	flag.DurationVar(&cfg.gap, "gap", 50*time.Millisecond, "producer delay after the first push")
	flag.DurationVar(&cfg.pause, "pause", 2*time.Second, "producer delay before the last push")
	flag.BoolVar(&cfg.dev, "dev", false, "human-readable development logging")
	flag.Parse()

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "queuedemo:", err)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(cfg.dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "queuedemo: logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}
