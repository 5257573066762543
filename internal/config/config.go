package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries runtime options for sysmon.
type Config struct {
	Interval   time.Duration
	TUI        bool
	JSON       bool
	JSONStream bool
	Debug      bool
}

func Default() Config {
	return Config{Interval: time.Second}
}

// ApplyEnv layers environment overrides onto c. SYSMON_INTERVAL takes
// a duration string; a bare number is read as seconds.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SYSMON_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Interval = parsed
		} else if parsed, err2 := time.ParseDuration(v + "s"); err2 == nil {
			c.Interval = parsed
		}
	}
}

// Validate rejects intervals too short to measure anything useful.
func (c Config) Validate() error {
	if c.Interval < 100*time.Millisecond {
		return fmt.Errorf("interval %s too short, minimum is 100ms", c.Interval)
	}
	return nil
}
