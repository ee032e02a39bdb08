// Package status holds live counters and gauges published by the game loop
package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Counter is a monotonically increasing metric
// Zero value is ready to use
type Counter struct {
	v atomic.Int64
}

// Add increments the counter by delta
func (c *Counter) Add(delta int64) {
	c.v.Add(delta)
}

// Load returns the current value
func (c *Counter) Load() int64 {
	return c.v.Load()
}

// Gauge is a float metric that is overwritten, not accumulated
// Zero value is ready to use (represents 0.0)
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Metric is a point-in-time reading of one registered metric
type Metric struct {
	Name  string
	Value float64
	Gauge bool
}

// Registry hands out named metrics
// Registration takes the lock; writers cache the returned pointer and update it lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*Counter
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*Counter),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for name, creating it if absent
func (r *Registry) Counter(name string) *Counter {
	return getOrCreate(&r.mu, r.counters, name)
}

// Gauge returns the gauge for name, creating it if absent
func (r *Registry) Gauge(name string) *Gauge {
	return getOrCreate(&r.mu, r.gauges, name)
}

func getOrCreate[T any](mu *sync.RWMutex, items map[string]*T, name string) *T {
	mu.RLock()
	ptr, ok := items[name]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	// Double-check after acquiring write lock
	if ptr, ok := items[name]; ok {
		return ptr
	}
	ptr = new(T)
	items[name] = ptr
	return ptr
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

// Snapshot reads every metric, sorted by name
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	metrics := make([]Metric, 0, len(r.counters)+len(r.gauges))
	for name, c := range r.counters {
		metrics = append(metrics, Metric{Name: name, Value: float64(c.Load())})
	}
	for name, g := range r.gauges {
		metrics = append(metrics, Metric{Name: name, Value: g.Get(), Gauge: true})
	}
	r.mu.RUnlock()

	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Name < metrics[j].Name })
	return metrics
}
