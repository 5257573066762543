package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSampleCollectsCPUAndMemory(t *testing.T) {
	s := New(50*time.Millisecond, zaptest.NewLogger(t))

	samp, err := s.Sample(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, samp.CPU.Percent, 0.0)
	assert.LessOrEqual(t, samp.CPU.Percent, 100.0)
	assert.Greater(t, samp.Memory.TotalBytes, uint64(0))
	assert.LessOrEqual(t, samp.Memory.UsedBytes, samp.Memory.TotalBytes)
	assert.GreaterOrEqual(t, samp.Memory.Percent, 0.0)
	assert.LessOrEqual(t, samp.Memory.Percent, 100.0)
	assert.WithinDuration(t, time.Now(), samp.Timestamp, 5*time.Second)
}

func TestSampleBlocksForTheWindow(t *testing.T) {
	interval := 200 * time.Millisecond
	s := New(interval, nil)

	start := time.Now()
	_, err := s.Sample(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestSampleCancelledContext(t *testing.T) {
	s := New(time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sample(ctx)
	assert.Error(t, err)
}

func TestStreamClosesOnCancel(t *testing.T) {
	s := New(10*time.Millisecond, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Stream(ctx)

	select {
	case samp, ok := <-ch:
		require.True(t, ok)
		assert.Greater(t, samp.Memory.TotalBytes, uint64(0))
	case <-time.After(2 * time.Second):
		t.Fatal("no sample before timeout")
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after cancel")
		}
	}
}
