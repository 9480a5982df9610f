package lrumap

import "iter"

// HashMap is a fixed-capacity Least-Recently-Used map that resolves keys
// through Go's builtin map. Lookup, push, and eviction are all amortized
// O(1).
//
// The key is stored twice: once in the index and once in the recency engine
// node. The two are created and destroyed in lock-step; recency operations
// never touch the index.
type HashMap[K comparable, V any] struct {
	index map[K]nodeRef
	cache lruCache[K, V]
	opt   Options[K, V]
}

// NewHashMap creates a hash-indexed LRU map with the given capacity.
// It panics if capacity is below 2 or exceeds the node handle range.
func NewHashMap[K comparable, V any](capacity int) *HashMap[K, V] {
	return NewHashMapWith(Options[K, V]{Capacity: capacity})
}

// NewHashMapWith creates a hash-indexed LRU map from Options.
func NewHashMapWith[K comparable, V any](opt Options[K, V]) *HashMap[K, V] {
	opt = opt.withDefaults()
	return &HashMap[K, V]{
		index: make(map[K]nodeRef, opt.Capacity),
		cache: newLruCache[K, V](opt.Capacity),
		opt:   opt,
	}
}

// Len returns the number of keys present.
func (m *HashMap[K, V]) Len() int { return m.cache.len() }

// IsEmpty reports whether the map contains no keys.
func (m *HashMap[K, V]) IsEmpty() bool { return m.cache.len() == 0 }

// Head returns a cursor to the most recently used entry, or nil when empty.
func (m *HashMap[K, V]) Head() *EntryRef[K, V] {
	if m.cache.head == nilRef {
		return nil
	}
	return newEntryRef[K, V](m, m.cache.head)
}

// Tail returns a cursor to the least recently used entry, or nil when empty.
func (m *HashMap[K, V]) Tail() *EntryRef[K, V] {
	if m.cache.tail == nilRef {
		return nil
	}
	return newEntryRef[K, V](m, m.cache.tail)
}

// Get returns the stored value for key, touching it.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	ref, ok := m.index[key]
	if !ok {
		m.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	m.opt.Metrics.Hit()
	return m.cache.get(ref).value, true
}

// GetWithoutUpdate returns the stored value for key without touching it.
func (m *HashMap[K, V]) GetWithoutUpdate(key K) (V, bool) {
	ref, ok := m.index[key]
	if !ok {
		m.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	m.opt.Metrics.Hit()
	return m.cache.peek(ref).value, true
}

// Entry returns a cursor for key without touching it, or nil if absent.
func (m *HashMap[K, V]) Entry(key K) *EntryRef[K, V] {
	ref, ok := m.index[key]
	if !ok {
		return nil
	}
	return newEntryRef[K, V](m, ref)
}

// Push inserts value for key, touching it. See Map.Push for the outcome
// contract.
func (m *HashMap[K, V]) Push(key K, value V) *Removed[K, V] {
	if ref, ok := m.index[key]; ok {
		// Replace in place; get touches, which is the only reordering
		// a replacement needs.
		n := m.cache.get(ref)
		previous := n.value
		n.value = value
		return &Removed[K, V]{Kind: RemovedPreviousValue, Value: previous}
	}

	ref, removed := m.cache.push(key, value)
	m.index[key] = ref
	if removed != nil {
		delete(m.index, removed.Key)
		m.opt.Metrics.Evict()
		if cb := m.opt.OnEvict; cb != nil {
			cb(removed.Key, removed.Value)
		}
	}
	m.opt.Metrics.Size(m.cache.len())
	return removed
}

// Extend pushes every pair in order, exactly as repeated Push.
func (m *HashMap[K, V]) Extend(pairs []Pair[K, V]) {
	for _, p := range pairs {
		m.Push(p.Key, p.Value)
	}
}

// All returns a lazy sequence of entries from most to least recently used.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return forwardSeq(&m.cache, func() nodeRef { return m.cache.head })
}

// Backward returns a lazy sequence of entries from least to most recently
// used.
func (m *HashMap[K, V]) Backward() iter.Seq2[K, V] {
	return backwardSeq(&m.cache, func() nodeRef { return m.cache.tail })
}

// Drain removes and yields entries front to back until the map is empty or
// the caller stops.
func (m *HashMap[K, V]) Drain() iter.Seq2[K, V] {
	return drainSeq[K, V](m)
}

// entryCache implementation: cursor removals erase the index entry in the
// same step, keeping node occupancy and the index in lock-step.

func (m *HashMap[K, V]) list() *lruCache[K, V] { return &m.cache }

func (m *HashMap[K, V]) removeNode(ref nodeRef) (K, V, nodeRef, nodeRef) {
	key, value, next, prev := m.cache.remove(ref)
	delete(m.index, key)
	m.opt.Metrics.Remove()
	m.opt.Metrics.Size(m.cache.len())
	return key, value, next, prev
}
