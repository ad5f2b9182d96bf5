package chainmap

import "math"

const (
	// defaultLoadFactor is the size/capacity ratio above which an insert
	// doubles the bucket array.
	defaultLoadFactor = 0.75
	// minCapacity is the smallest bucket array a table ever has.
	minCapacity = 8
)

// MapConfig defines configurable Table options.
type MapConfig struct {
	sizeHint   int
	loadFactor float64
}

// WithPresize configures a new Table with capacity enough to hold
// sizeHint entries without growing. If sizeHint is zero or negative,
// the value is ignored.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.sizeHint = sizeHint
	}
}

// WithLoadFactor sets the load factor that triggers growth on insert.
// Values outside (0, 1] are ignored and the default of 0.75 is kept.
func WithLoadFactor(loadFactor float64) func(*MapConfig) {
	return func(c *MapConfig) {
		c.loadFactor = loadFactor
	}
}

func newMapConfig(options []func(*MapConfig)) MapConfig {
	var cfg MapConfig
	for _, opt := range options {
		opt(&cfg)
	}
	if math.IsNaN(cfg.loadFactor) || cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		cfg.loadFactor = defaultLoadFactor
	}
	return cfg
}

// initialCapacity returns the bucket count a table built with cfg and
// expected to hold count entries starts with.
func (cfg *MapConfig) initialCapacity(count int) int {
	capacity := DetermineSize(count)
	if cfg.sizeHint > 0 {
		need := math.Ceil(float64(cfg.sizeHint) / cfg.loadFactor)
		if need > float64(maxCapacity) {
			panicOverflow(cfg.sizeHint)
		}
		capacity = max(capacity, DetermineSize(int(need)))
	}
	return capacity
}
