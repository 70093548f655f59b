package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_BurstCollapsesToOneRun(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(20*time.Millisecond, func() {
		runs.Add(1)
	})

	for i := 0; i < 10; i++ {
		s.Schedule()
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// No further runs arrive after the trailing one.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_ScheduleResetsPendingDelay(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(50*time.Millisecond, func() {
		runs.Add(1)
	})

	s.Schedule()
	time.Sleep(30 * time.Millisecond)
	s.Schedule() // pushes the pending run out by another full delay

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_ScheduleDuringRunDefersOneMore(t *testing.T) {
	var runs atomic.Int32
	block := make(chan struct{})
	started := make(chan struct{}, 1)

	s := NewScheduler(10*time.Millisecond, func() {
		started <- struct{}{}
		<-block
		runs.Add(1)
	})

	s.Schedule()
	<-started

	// The run is in flight; these must neither overlap it nor be lost.
	s.Schedule()
	s.Schedule()
	assert.Equal(t, int32(0), runs.Load())

	close(block)

	assert.Eventually(t, func() bool {
		return runs.Load() == 2
	}, time.Second, 5*time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_StopCancelsPending(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(20*time.Millisecond, func() {
		runs.Add(1)
	})

	s.Schedule()
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	// Scheduling after Stop is a no-op.
	s.Schedule()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}
