package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct{ calls atomic.Int32 }

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestStartSweepTask_RunsImmediatelyAndOnTicks(t *testing.T) {
	s := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartSweepTask(ctx, s, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return s.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestStartSweepTask_StopsOnCancel(t *testing.T) {
	s := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	StartSweepTask(ctx, s, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return s.calls.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	settled := s.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, s.calls.Load())
}
