package kdtree

import "github.com/katalvlaran/lvlath-kdindex/kdmetrics"

// Option configures a KDT or MetricKDT at construction time.
type Option func(*config)

type config struct {
	collector kdmetrics.Collector
}

func defaultConfig() config {
	return config{collector: kdmetrics.Nop()}
}

// WithMetricsCollector attaches a counters sink that records nodes visited
// and planes pruned during queries. Passing a nil collector is a no-op
// (the default kdmetrics.Nop() collector remains in effect).
func WithMetricsCollector(c kdmetrics.Collector) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.collector = c
		}
	}
}
