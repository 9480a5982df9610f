package lrumap

// Options configures a map. Capacity is required; the zero values of the
// remaining fields are safe:
//   - nil Metrics -> NoopMetrics
//   - nil OnEvict -> no callback
type Options[K any, V any] struct {
	// Capacity is the entry count limit. Construction panics if it is
	// below 2 or exceeds the node handle range.
	Capacity int

	// Metrics receives Hit/Miss/Evict/Remove/Size signals.
	// Plug a Prometheus adapter (package lruprom) to export them.
	Metrics Metrics

	// OnEvict is called for every entry displaced by a capacity eviction.
	// Explicit removals do not trigger it. Keep callbacks lightweight;
	// they run synchronously inside Push.
	OnEvict func(key K, value V)
}

func (o Options[K, V]) withDefaults() Options[K, V] {
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	return o
}
