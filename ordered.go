package lrumap

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// btreeDegree is the branching factor for the ordered index. 32 keeps the
// tree shallow for the capacities this library targets.
const btreeDegree = 32

// indexEntry is one ordered-index record: a key and the arena ref of the
// node holding it.
type indexEntry[K any] struct {
	key K
	ref nodeRef
}

// OrderedMap is a fixed-capacity Least-Recently-Used map that resolves keys
// through a B-tree. Lookup and push are O(log n); on top of the HashMap
// surface it supports range queries over keys combined with recency
// (MostRecentInRange).
//
// As with HashMap, the key is stored twice (index and node) and the two are
// kept in lock-step.
type OrderedMap[K any, V any] struct {
	index *btree.BTreeG[indexEntry[K]]
	less  func(a, b K) bool
	cache lruCache[K, V]
	opt   Options[K, V]
}

// NewOrderedMap creates an order-indexed LRU map over naturally ordered keys
// with the given capacity. It panics if capacity is below 2 or exceeds the
// node handle range.
func NewOrderedMap[K cmp.Ordered, V any](capacity int) *OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](capacity, func(a, b K) bool { return a < b })
}

// NewOrderedMapFunc creates an order-indexed LRU map using less as the total
// order over keys.
func NewOrderedMapFunc[K any, V any](capacity int, less func(a, b K) bool) *OrderedMap[K, V] {
	return NewOrderedMapWith(Options[K, V]{Capacity: capacity}, less)
}

// NewOrderedMapWith creates an order-indexed LRU map from Options and a key
// order.
func NewOrderedMapWith[K any, V any](opt Options[K, V], less func(a, b K) bool) *OrderedMap[K, V] {
	opt = opt.withDefaults()
	return &OrderedMap[K, V]{
		index: btree.NewG(btreeDegree, func(a, b indexEntry[K]) bool {
			return less(a.key, b.key)
		}),
		less:  less,
		cache: newLruCache[K, V](opt.Capacity),
		opt:   opt,
	}
}

// Len returns the number of keys present.
func (m *OrderedMap[K, V]) Len() int { return m.cache.len() }

// IsEmpty reports whether the map contains no keys.
func (m *OrderedMap[K, V]) IsEmpty() bool { return m.cache.len() == 0 }

// Head returns a cursor to the most recently used entry, or nil when empty.
func (m *OrderedMap[K, V]) Head() *EntryRef[K, V] {
	if m.cache.head == nilRef {
		return nil
	}
	return newEntryRef[K, V](m, m.cache.head)
}

// Tail returns a cursor to the least recently used entry, or nil when empty.
func (m *OrderedMap[K, V]) Tail() *EntryRef[K, V] {
	if m.cache.tail == nilRef {
		return nil
	}
	return newEntryRef[K, V](m, m.cache.tail)
}

func (m *OrderedMap[K, V]) lookup(key K) (nodeRef, bool) {
	item, ok := m.index.Get(indexEntry[K]{key: key})
	if !ok {
		return nilRef, false
	}
	return item.ref, true
}

// Get returns the stored value for key, touching it.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	ref, ok := m.lookup(key)
	if !ok {
		m.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	m.opt.Metrics.Hit()
	return m.cache.get(ref).value, true
}

// GetWithoutUpdate returns the stored value for key without touching it.
func (m *OrderedMap[K, V]) GetWithoutUpdate(key K) (V, bool) {
	ref, ok := m.lookup(key)
	if !ok {
		m.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	m.opt.Metrics.Hit()
	return m.cache.peek(ref).value, true
}

// Entry returns a cursor for key without touching it, or nil if absent.
func (m *OrderedMap[K, V]) Entry(key K) *EntryRef[K, V] {
	ref, ok := m.lookup(key)
	if !ok {
		return nil
	}
	return newEntryRef[K, V](m, ref)
}

// Push inserts value for key, touching it. See Map.Push for the outcome
// contract.
func (m *OrderedMap[K, V]) Push(key K, value V) *Removed[K, V] {
	if ref, ok := m.lookup(key); ok {
		n := m.cache.get(ref)
		previous := n.value
		n.value = value
		return &Removed[K, V]{Kind: RemovedPreviousValue, Value: previous}
	}

	ref, removed := m.cache.push(key, value)
	m.index.ReplaceOrInsert(indexEntry[K]{key: key, ref: ref})
	if removed != nil {
		m.index.Delete(indexEntry[K]{key: removed.Key})
		m.opt.Metrics.Evict()
		if cb := m.opt.OnEvict; cb != nil {
			cb(removed.Key, removed.Value)
		}
	}
	m.opt.Metrics.Size(m.cache.len())
	return removed
}

// Extend pushes every pair in order, exactly as repeated Push.
func (m *OrderedMap[K, V]) Extend(pairs []Pair[K, V]) {
	for _, p := range pairs {
		m.Push(p.Key, p.Value)
	}
}

// All returns a lazy sequence of entries from most to least recently used.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return forwardSeq(&m.cache, func() nodeRef { return m.cache.head })
}

// Backward returns a lazy sequence of entries from least to most recently
// used.
func (m *OrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	return backwardSeq(&m.cache, func() nodeRef { return m.cache.tail })
}

// Drain removes and yields entries front to back until the map is empty or
// the caller stops.
func (m *OrderedMap[K, V]) Drain() iter.Seq2[K, V] {
	return drainSeq[K, V](m)
}

// MostRecentInRange returns a cursor to the most recently touched entry
// whose key falls within r, or nil if no key matches. No entry is touched;
// the recency order is preserved. Cost is proportional to the number of keys
// in the range.
func (m *OrderedMap[K, V]) MostRecentInRange(r KeyRange[K]) *EntryRef[K, V] {
	return m.MostRecentInRangeWhere(r, func(K, V) bool { return true })
}

// MostRecentInRangeWhere is MostRecentInRange restricted to entries for
// which condition returns true. The condition sees each candidate key and
// value; it must not mutate the map.
func (m *OrderedMap[K, V]) MostRecentInRangeWhere(r KeyRange[K], condition func(key K, value V) bool) *EntryRef[K, V] {
	best := nilRef
	var bestStaleness uint64

	scan := func(item indexEntry[K]) bool {
		if r.pastUpper(item.key, m.less) {
			return false
		}
		if r.skipsLower(item.key, m.less) {
			return true
		}
		n := m.cache.peek(item.ref)
		if condition(n.key, n.value) {
			// Wrapping distance from the last touch; ties cannot occur
			// because the sequence is strictly monotonic per touch.
			staleness := m.cache.sequence - n.lastAccess
			if best == nilRef || staleness < bestStaleness {
				best = item.ref
				bestStaleness = staleness
			}
		}
		return true
	}

	if r.hasLower() {
		m.index.AscendGreaterOrEqual(indexEntry[K]{key: r.lower}, scan)
	} else {
		m.index.Ascend(scan)
	}

	if best == nilRef {
		return nil
	}
	return newEntryRef[K, V](m, best)
}

func (m *OrderedMap[K, V]) list() *lruCache[K, V] { return &m.cache }

func (m *OrderedMap[K, V]) removeNode(ref nodeRef) (K, V, nodeRef, nodeRef) {
	key, value, next, prev := m.cache.remove(ref)
	m.index.Delete(indexEntry[K]{key: key})
	m.opt.Metrics.Remove()
	m.opt.Metrics.Size(m.cache.len())
	return key, value, next, prev
}
