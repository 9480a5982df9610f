package lrumap

// lruCache is the recency engine: a fixed-capacity arena of nodes threaded
// into a doubly linked list ordered from most to least recently touched.
//
// All "pointer" mutation is integer-indexed field assignment on the arena, so
// there are no shared node pointers and no ownership cycles. Every operation
// is O(1). The engine knows nothing about key lookup; the index adapters
// layered on top resolve keys to refs and keep their indexes in lock-step
// with node occupancy.
type lruCache[K any, V any] struct {
	nodes []node[K, V]

	head   nodeRef // most recently used, nilRef when empty
	tail   nodeRef // least recently used, nilRef when empty
	vacant nodeRef // free-list head, chained through node.next

	// sequence increments on every recency-affecting mutation and is never
	// reset. uint64 wrapping keeps staleness well-defined as a distance.
	sequence uint64

	length   int // occupied slots
	capacity int
}

func newLruCache[K any, V any](capacity int) lruCache[K, V] {
	if capacity < 2 {
		panic("lrumap: capacity must be at least 2")
	}
	if uint64(capacity) >= uint64(nilRef) {
		panic("lrumap: capacity exceeds the node handle range")
	}
	return lruCache[K, V]{
		nodes:    make([]node[K, V], 0, capacity),
		head:     nilRef,
		tail:     nilRef,
		vacant:   nilRef,
		capacity: capacity,
	}
}

func (c *lruCache[K, V]) len() int { return c.length }

// peek returns the node without any recency side effect. Panics if ref names
// a vacant slot; refs are never exposed outside the adapter boundary, so a
// stale ref here is a programmer error, not a runtime condition.
func (c *lruCache[K, V]) peek(ref nodeRef) *node[K, V] {
	n := &c.nodes[ref]
	if !n.occupied {
		panic("lrumap: access through a recycled node handle")
	}
	return n
}

// get touches the node, making it the most recently used entry, then
// returns it.
func (c *lruCache[K, V]) get(ref nodeRef) *node[K, V] {
	c.touch(ref)
	return &c.nodes[ref]
}

// touch splices the node out of its current position and reinstates it as
// the head, stamping the incremented sequence. Already-head is a no-op and
// does not advance the sequence.
func (c *lruCache[K, V]) touch(ref nodeRef) {
	if c.head == ref {
		return
	}

	c.sequence++
	c.peek(ref).lastAccess = c.sequence

	// ref is not the head, so it has a previous node. Patch the neighbors:
	// the node is either the tail (tail moves to prev) or interior (next
	// inherits prev). Both cases collapse correctly when only two nodes
	// remain.
	next := c.nodes[ref].next
	prev := c.nodes[ref].prev
	c.nodes[ref].next = c.head
	c.nodes[ref].prev = nilRef
	c.nodes[prev].next = next
	if c.tail == ref {
		c.tail = prev
	} else {
		c.nodes[next].prev = prev
	}

	c.nodes[c.head].prev = ref
	c.head = ref
}

// push allocates a node for key/value (possibly evicting the tail), inserts
// it at the head, and stamps its access time. The second return is non-nil
// only when a different key was displaced to make room.
func (c *lruCache[K, V]) push(key K, value V) (nodeRef, *Removed[K, V]) {
	if c.head == nilRef {
		// First node of the list; allocate cannot evict here.
		ref, _, _, _ := c.allocate(key, value)
		return ref, nil
	}

	ref, evictedKey, evictedValue, evicted := c.allocate(key, value)
	c.sequence++
	n := &c.nodes[ref]
	n.lastAccess = c.sequence
	n.next = c.head
	c.nodes[c.head].prev = ref
	c.head = ref

	if !evicted {
		return ref, nil
	}
	return ref, &Removed[K, V]{Kind: RemovedEvicted, Key: evictedKey, Value: evictedValue}
}

// allocate obtains a slot for a new entry. Preference order: reuse a vacant
// slot, grow into unused declared capacity, evict the current tail. The
// eviction branch is the only path that reports a displaced entry.
//
// The new node is detached (nil links) unless it is the first node, in which
// case it becomes both head and tail.
func (c *lruCache[K, V]) allocate(key K, value V) (ref nodeRef, evictedKey K, evictedValue V, evicted bool) {
	switch {
	case c.vacant != nilRef:
		ref = c.vacant
		c.vacant = c.nodes[ref].next
		c.nodes[ref] = node[K, V]{
			key:        key,
			value:      value,
			prev:       nilRef,
			next:       nilRef,
			lastAccess: c.sequence,
			occupied:   true,
		}
		c.length++
		if c.head == nilRef {
			c.head = ref
			c.tail = ref
		}
		return ref, evictedKey, evictedValue, false

	case len(c.nodes) == c.capacity:
		// Arena is full and no slot is free: expire the least recently
		// used entry and reuse its slot in place.
		ref = c.tail
		c.tail = c.nodes[ref].prev
		if c.tail != nilRef {
			c.nodes[c.tail].next = nilRef
		}
		c.nodes[ref].prev = nilRef

		n := &c.nodes[ref]
		evictedKey, evictedValue = n.key, n.value
		n.key, n.value = key, value
		return ref, evictedKey, evictedValue, true

	default:
		ref = nodeRef(len(c.nodes))
		c.nodes = append(c.nodes, node[K, V]{
			key:        key,
			value:      value,
			prev:       nilRef,
			next:       nilRef,
			lastAccess: c.sequence,
			occupied:   true,
		})
		c.length++
		if c.head == nilRef {
			c.head = ref
			c.tail = ref
		}
		return ref, evictedKey, evictedValue, false
	}
}

// remove detaches the node from the list, returns its slot to the free list,
// and reports the former neighbors so a cursor can reposition itself.
// Panics if the slot is already vacant.
func (c *lruCache[K, V]) remove(ref nodeRef) (key K, value V, next, prev nodeRef) {
	n := c.peek(ref)
	c.length--

	key, value = n.key, n.value
	var zeroK K
	var zeroV V
	n.key, n.value = zeroK, zeroV
	n.occupied = false

	next = n.next
	n.next = c.vacant
	prev = n.prev
	n.prev = nilRef

	if prev != nilRef {
		c.nodes[prev].next = next
	}
	if next != nilRef {
		c.nodes[next].prev = prev
	}
	if c.tail == ref {
		c.tail = prev
	}
	if c.head == ref {
		c.head = next
	}

	c.vacant = ref
	return key, value, next, prev
}
