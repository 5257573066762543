package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/user/sysmon/internal/model"
)

// Sampler builds Samples from OS counters. The CPU query blocks for
// the configured interval, so one Sample call paces one monitor cycle.
type Sampler struct {
	Interval time.Duration

	log *zap.Logger
}

func New(interval time.Duration, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{Interval: interval, log: log}
}

// Sample blocks for the sampling window and returns one snapshot.
// CPU and memory stats are mandatory and their failure propagates;
// swap, load average and uptime are best-effort reads.
func (s *Sampler) Sample(ctx context.Context) (model.Sample, error) {
	cpuPcts, err := cpu.PercentWithContext(ctx, s.Interval, false)
	if err != nil {
		return model.Sample{}, fmt.Errorf("cpu percent: %w", err)
	}
	var cpuPct float64
	if len(cpuPcts) > 0 {
		cpuPct = cpuPcts[0]
	}

	memStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.Sample{}, fmt.Errorf("virtual memory: %w", err)
	}

	samp := model.Sample{
		Timestamp: time.Now(),
		CPU:       model.CPU{Percent: cpuPct},
		Memory: model.Memory{
			Percent:    memStat.UsedPercent,
			UsedBytes:  memStat.Used,
			TotalBytes: memStat.Total,
		},
	}

	if swapStat, err := mem.SwapMemoryWithContext(ctx); err == nil {
		samp.Memory.SwapUsed = swapStat.Used
		samp.Memory.SwapTotal = swapStat.Total
	} else {
		s.log.Debug("swap stats unavailable", zap.Error(err))
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		samp.Load = model.Load{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
	} else {
		s.log.Debug("load average unavailable", zap.Error(err))
	}
	if up, err := host.UptimeWithContext(ctx); err == nil {
		samp.UptimeSecs = up
	} else {
		s.log.Debug("uptime unavailable", zap.Error(err))
	}

	return samp, nil
}

// Stream returns a channel that will receive snapshots until ctx is
// done. The blocking window inside Sample sets the cadence; there is
// no separate ticker.
func (s *Sampler) Stream(ctx context.Context) <-chan model.Sample {
	ch := make(chan model.Sample)
	go func() {
		defer close(ch)
		for {
			samp, err := s.Sample(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Warn("sampling failed, stream closing", zap.Error(err))
				}
				return
			}
			select {
			case ch <- samp:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
