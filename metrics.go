package lrumap

// Metrics exposes map-level observability hooks. Implementations are invoked
// synchronously from map operations and must be cheap.
type Metrics interface {
	// Hit is recorded when a lookup finds the key.
	Hit()
	// Miss is recorded when a lookup does not find the key.
	Miss()
	// Evict is recorded when a push displaces the least recently used
	// entry to make room.
	Evict()
	// Remove is recorded for explicit removals (cursor removal, Drain).
	Remove()
	// Size reports the number of resident entries after a mutation.
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing. It is
// the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()     {}
func (NoopMetrics) Miss()    {}
func (NoopMetrics) Evict()   {}
func (NoopMetrics) Remove()  {}
func (NoopMetrics) Size(int) {}

var _ Metrics = NoopMetrics{}
