package lrumap

import "iter"

// RemovedKind tags the outcome of a write that displaced something.
type RemovedKind uint8

const (
	// RemovedPreviousValue — the key already existed; its value was
	// replaced and no eviction happened. Key holds the zero value.
	RemovedPreviousValue RemovedKind = iota
	// RemovedEvicted — a different key was displaced to make room for the
	// key that was written.
	RemovedEvicted
)

// Removed describes what a Push displaced: either the previous value stored
// for the same key, or an evicted entry. A nil *Removed means a fresh insert
// under capacity.
type Removed[K any, V any] struct {
	Kind  RemovedKind
	Key   K
	Value V
}

// IsPreviousValue reports whether the write replaced an existing value.
func (r *Removed[K, V]) IsPreviousValue() bool {
	return r != nil && r.Kind == RemovedPreviousValue
}

// IsEvicted reports whether the write displaced a different key.
func (r *Removed[K, V]) IsEvicted() bool {
	return r != nil && r.Kind == RemovedEvicted
}

// Pair is a key/value pair accepted by Extend.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Map is the surface shared by both index adapters.
//
// Maps are single-owner and synchronous: no method is safe for concurrent
// use, and even reads (Get, Head, EntryRef.Value) mutate recency state.
// Concurrent access requires an external mutex around the whole map.
type Map[K any, V any] interface {
	// Len returns the number of keys present.
	Len() int

	// IsEmpty reports whether the map contains no keys.
	IsEmpty() bool

	// Head returns a cursor to the most recently used entry, or nil when
	// the map is empty.
	Head() *EntryRef[K, V]

	// Tail returns a cursor to the least recently used entry, or nil when
	// the map is empty.
	Tail() *EntryRef[K, V]

	// Get returns the stored value for key, touching it: the key becomes
	// the most recently used.
	Get(key K) (V, bool)

	// GetWithoutUpdate returns the stored value for key without touching
	// it, preserving its position in the recency order.
	GetWithoutUpdate(key K) (V, bool)

	// Entry returns a cursor for key without touching it, or nil if the
	// key is absent. The cursor may touch the key depending on which of
	// its methods are used.
	Entry(key K) *EntryRef[K, V]

	// Push inserts value for key, touching it. If the key already exists
	// its value is replaced and the previous value is returned. If the key
	// is new and the map is full, the least recently used entry is evicted
	// and returned. A fresh insert under capacity returns nil.
	Push(key K, value V) *Removed[K, V]

	// Extend pushes every pair in order. It is exactly equivalent to
	// calling Push in a loop; keys already present are replaced, not
	// duplicated.
	Extend(pairs []Pair[K, V])

	// All returns a lazy, restartable sequence of entries from most to
	// least recently used. The map must not be mutated during a pass.
	All() iter.Seq2[K, V]

	// Backward returns a lazy, restartable sequence of entries from least
	// to most recently used; it yields exactly the reverse of All.
	Backward() iter.Seq2[K, V]

	// Drain removes and yields entries front to back (most recently used
	// first) until the map is empty or the caller stops. Entries already
	// yielded are gone even if the pass is abandoned early.
	Drain() iter.Seq2[K, V]
}

// entryCache is the contract between a cursor and its owning adapter.
// Removal goes through the adapter, never the engine directly, so the
// adapter can erase its index entry in the same step.
type entryCache[K any, V any] interface {
	list() *lruCache[K, V]
	removeNode(ref nodeRef) (key K, value V, next, prev nodeRef)
}

// Compile-time checks: both adapters satisfy Map.
var (
	_ Map[string, int] = (*HashMap[string, int])(nil)
	_ Map[string, int] = (*OrderedMap[string, int])(nil)
)
