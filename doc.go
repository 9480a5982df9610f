// Package lrumap provides fixed-capacity Least-Recently-Used maps: recency
// ordered key/value containers that evict the least recently touched entry
// when a new key is pushed at capacity.
//
// Two index variants share one recency engine:
//
//   - HashMap resolves keys through Go's builtin map (amortized O(1) lookup).
//   - OrderedMap resolves keys through a B-tree (O(log n) lookup) and adds
//     range queries combined with recency: MostRecentInRange returns the
//     most recently touched entry whose key falls in a given interval,
//     without disturbing the order.
//
// # Design
//
//   - Storage: entries live in a flat arena of slots addressed by small
//     integer handles. The recency list is doubly linked through those
//     handles, so there are no node pointers, no ownership cycles, and
//     removal recycles slots through a free list in O(1).
//
//   - Touching: Get, Push, and EntryRef.Value move the entry to the front
//     of the recency order and stamp a monotonic sequence counter.
//     GetWithoutUpdate and EntryRef.PeekValue read without any side effect.
//     The distance between the map's counter and an entry's stamp is its
//     staleness: the number of recency-affecting mutations since the entry
//     was last touched.
//
//   - Cursors: Entry, Head, and Tail return an EntryRef, a transient cursor
//     that can peek, touch, walk the list in either direction, and remove
//     entries while keeping the key index consistent. A cursor borrows the
//     map exclusively; do not interleave it with other calls on the map.
//
//   - Eviction: pushing a new key at capacity always displaces the current
//     tail and reports it as Removed with RemovedEvicted. Replacing an
//     existing key's value never evicts and reports RemovedPreviousValue.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Remove/Size signals
//     (NoopMetrics by default); package lruprom exports them to Prometheus.
//     Options.OnEvict is called for every capacity eviction.
//
// # Concurrency
//
// Maps are single-owner and synchronous. No operation blocks or yields, and
// none is safe for concurrent use: even reads mutate recency state. Wrap the
// whole map in a sync.Mutex when sharing it across goroutines.
//
// # Basic usage
//
//	lru := lrumap.NewHashMap[string, int](2)
//	lru.Push("a", 1)
//	lru.Push("b", 2)
//	removed := lru.Push("c", 3) // evicts "a"
//	fmt.Println(removed.Key)    // "a"
//	if v, ok := lru.Get("b"); ok {
//	    _ = v // "b" is now the most recently used key
//	}
//
// # Range queries (OrderedMap)
//
//	lru := lrumap.NewOrderedMap[int, string](5)
//	lru.Extend([]lrumap.Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}})
//	if e := lru.MostRecentInRange(lrumap.RangeInclusive(2, 3)); e != nil {
//	    fmt.Println(e.Key()) // 3, the most recently pushed key in [2, 3]
//	}
package lrumap
