package model

import "time"

// CPU holds utilization measured over the sampling window.
type CPU struct {
	Percent float64 `json:"percent"` // 0-100
}

// Memory captures RAM and swap usage in bytes for precision.
type Memory struct {
	Percent    float64 `json:"percent"` // 0-100
	UsedBytes  uint64  `json:"used_bytes"`
	TotalBytes uint64  `json:"total_bytes"`
	SwapUsed   uint64  `json:"swap_used"`
	SwapTotal  uint64  `json:"swap_total"`
}

// Load mirrors the 1/5/15 minute load averages.
type Load struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// Sample is one snapshot exchanged between the sampler and the
// renderers. Built fresh each cycle, never retained.
type Sample struct {
	Timestamp  time.Time `json:"timestamp"`
	CPU        CPU       `json:"cpu"`
	Memory     Memory    `json:"memory"`
	Load       Load      `json:"load"`
	UptimeSecs uint64    `json:"uptime_secs"`
}

// Zero returns an empty sample for initialization.
func Zero() Sample { return Sample{Timestamp: time.Now()} }
