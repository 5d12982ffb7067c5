package bkdtree

import "github.com/katalvlaran/lvlath-kdindex/kdmetrics"

// DefaultBlockSize is the base buffer capacity used when WithBlockSize is
// not supplied.
const DefaultBlockSize = 128

// MaxSlotIndex bounds the cascade: a BKDT can hold at most MaxSlotIndex
// occupied slots, so at most blockSize*(2^MaxSlotIndex - 1) items in its
// slots plus blockSize in the base buffer, blockSize*2^MaxSlotIndex in all.
const MaxSlotIndex = 32

// Option configures a BKDT or MetricBKDT at construction time.
type Option func(*config)

type config struct {
	blockSize int
	collector kdmetrics.Collector
}

func defaultConfig() config {
	return config{blockSize: DefaultBlockSize, collector: kdmetrics.Nop()}
}

// WithBlockSize sets the base buffer capacity (and the size of slot 0).
// Must be >= 2; New/NewMetric return kdcore.ErrInvalidBlockSize otherwise.
func WithBlockSize(n int) Option {
	return func(cfg *config) { cfg.blockSize = n }
}

// WithMetricsCollector attaches a counters sink shared by every slot's own
// tree. The linear scan of the base buffer reports nothing to it. Passing
// nil is a no-op.
func WithMetricsCollector(c kdmetrics.Collector) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.collector = c
		}
	}
}
