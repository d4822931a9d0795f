package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() config {
	return config{
		capacity: 2,
		timeout:  time.Second,
		gap:      5 * time.Millisecond,
		pause:    200 * time.Millisecond,
	}
}

func TestRunCompletes(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := testConfig()

	err := run(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)

	for _, e := range logs.All() {
		if c, ok := e.ContextMap()["count"]; ok {
			assert.LessOrEqual(t, c, int64(cfg.capacity), "entry %q", e.Message)
		}
	}

	done := logs.FilterMessage("done").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	pushed := fields["pushed"].(uint64)
	popped := fields["popped"].(uint64)
	dropped := fields["dropped"].(uint64)
	assert.Equal(t, uint64(5), pushed)
	assert.GreaterOrEqual(t, popped, uint64(consumerPops))
	assert.LessOrEqual(t, popped+dropped, pushed)

	assert.Equal(t, 5, logs.FilterMessage("push").Len())
	assert.Equal(t, int(popped), logs.FilterMessage("pop").Len())
}

func TestRunTimedPopExpires(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := testConfig()
	cfg.timeout = 0

	require.NoError(t, run(context.Background(), cfg, zap.New(core)))

	if logs.FilterMessage("timed pop expired").Len() == 1 {
		// The first element was still queued for the indefinite pops.
		assert.GreaterOrEqual(t, logs.FilterMessage("pop").Len(), consumerPops)
	}
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig()
	cfg.pause = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := run(ctx, cfg, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config)
		wantErr bool
	}{
		{"defaults", func(*config) {}, false},
		{"zero_capacity", func(c *config) { c.capacity = 0 }, true},
		{"negative_capacity", func(c *config) { c.capacity = -3 }, true},
		{"negative_timeout", func(c *config) { c.timeout = -time.Millisecond }, true},
		{"negative_pause", func(c *config) { c.pause = -time.Second }, true},
		{"zero_durations", func(c *config) { c.timeout, c.gap, c.pause = 0, 0, 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
