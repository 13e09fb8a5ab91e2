package metrics

import "time"

// Nop discards every metric. Used when metrics are disabled and by the CLI.
type Nop struct{}

func (Nop) Counter(string, float64, map[string]string) {}
func (Nop) Gauge(string, float64, map[string]string) {}
func (Nop) Histogram(string, float64, map[string]string) {}
func (Nop) Timing(string, time.Duration, map[string]string) {}
