package monitor

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/user/sysmon/internal/model"
)

// State of the monitor loop. The monitor starts Running and flips to
// Stopped exactly once, on interrupt.
type State int32

const (
	StateRunning State = iota
	StateStopped
)

// Source is the OS metrics collaborator. Sample is expected to block
// for the sampling window and honor ctx cancellation.
type Source interface {
	Sample(ctx context.Context) (model.Sample, error)
}

// Clearer wipes the terminal before each redraw.
type Clearer interface {
	Clear()
}

// Monitor drives the sample/clear/print cycle.
type Monitor struct {
	src Source
	scr Clearer
	out io.Writer
	log *zap.Logger

	state atomic.Int32
}

func New(src Source, scr Clearer, out io.Writer, log *zap.Logger) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Monitor{src: src, scr: scr, out: out, log: log}
}

func (m *Monitor) State() State { return State(m.state.Load()) }

// Run loops until ctx is cancelled, then prints the farewell line and
// returns nil so the process exits cleanly. A failed mandatory metrics
// read aborts with the error; there is no retry or degraded mode.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.Debug("monitor started")
	for m.State() == StateRunning {
		samp, err := m.src.Sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return m.stop()
			}
			return err
		}
		m.scr.Clear()
		writeReport(m.out, samp)
		m.log.Debug("cycle rendered",
			zap.Float64("cpu_pct", samp.CPU.Percent),
			zap.Float64("mem_pct", samp.Memory.Percent))

		select {
		case <-ctx.Done():
			return m.stop()
		default:
		}
	}
	return nil
}

// stop transitions Running -> Stopped and prints the farewell once.
func (m *Monitor) stop() error {
	if m.state.CompareAndSwap(int32(StateRunning), int32(StateStopped)) {
		fmt.Fprintln(m.out, "\nMonitor stopped.")
		m.log.Debug("monitor stopped")
	}
	return nil
}
