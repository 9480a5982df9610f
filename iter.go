package lrumap

import "iter"

// forwardSeq walks the recency list from start toward the tail. The start ref
// is re-resolved on every pass, so the sequence is restartable and reflects
// the list as it stands when a pass begins.
func forwardSeq[K any, V any](c *lruCache[K, V], start func() nodeRef) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for ref := start(); ref != nilRef; {
			n := c.peek(ref)
			if !yield(n.key, n.value) {
				return
			}
			ref = n.next
		}
	}
}

// backwardSeq walks the recency list from start toward the head.
func backwardSeq[K any, V any](c *lruCache[K, V], start func() nodeRef) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for ref := start(); ref != nilRef; {
			n := c.peek(ref)
			if !yield(n.key, n.value) {
				return
			}
			ref = n.prev
		}
	}
}

// drainSeq removes and yields the head entry repeatedly. Removal goes
// through the owner so the index is erased in lock-step; stopping a pass
// early leaves the map consistent, minus the entries already yielded.
func drainSeq[K any, V any](owner entryCache[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			c := owner.list()
			if c.head == nilRef {
				return
			}
			key, value, _, _ := owner.removeNode(c.head)
			if !yield(key, value) {
				return
			}
		}
	}
}
