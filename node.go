package lrumap

import "math"

// nodeRef is an opaque index into the arena. It is not a pointer: the numeric
// value may be reused by a later entry once the slot is recycled, so refs must
// never be retained across removals without re-resolving through an index.
type nodeRef uint32

// nilRef marks the absence of a node (list ends, empty free list).
const nilRef = nodeRef(math.MaxUint32)

// node is one arena slot. It stores the key/value alongside the recency list
// links and the sequence value recorded at the entry's last touch.
//
// Occupied slots form a single doubly linked list from head (MRU) to tail
// (LRU). Vacant slots are chained through next as the free list; their prev
// link and contents are meaningless.
type node[K any, V any] struct {
	key   K
	value V

	prev nodeRef
	next nodeRef

	// lastAccess is the engine's sequence value when this entry was last
	// touched. Staleness is the wrapping distance sequence-lastAccess.
	lastAccess uint64

	occupied bool
}
