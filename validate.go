package lrumap

import "fmt"

// checkList verifies the engine's structural invariants: the occupied slots
// form exactly one cycle-free doubly linked list from head to tail, the free
// list is cycle-free and covers every vacant slot, and the bookkeeping
// counters agree with what the arena holds.
//
// It exists for tests and fuzzing: corruption here means an internal bug,
// and a guarded traversal fails loudly instead of looping forever.
func (c *lruCache[K, V]) checkList() error {
	if c.head == nilRef || c.tail == nilRef {
		if c.head != c.tail {
			return fmt.Errorf("mismatched head/tail: head=%d tail=%d", c.head, c.tail)
		}
		if c.length != 0 {
			return fmt.Errorf("empty list but length=%d", c.length)
		}
	}

	seen := make(map[nodeRef]struct{}, c.length)
	occupied := 0
	prev := nilRef
	for ref := c.head; ref != nilRef; {
		if _, ok := seen[ref]; ok {
			return fmt.Errorf("cycle detected at node %d", ref)
		}
		seen[ref] = struct{}{}
		n := &c.nodes[ref]
		if !n.occupied {
			return fmt.Errorf("vacant node %d reachable from head", ref)
		}
		if n.prev != prev {
			return fmt.Errorf("node %d prev link is %d, want %d", ref, n.prev, prev)
		}
		occupied++
		prev = ref
		ref = n.next
	}
	if prev != c.tail {
		return fmt.Errorf("list ends at %d but tail is %d", prev, c.tail)
	}
	if occupied != c.length {
		return fmt.Errorf("list holds %d nodes but length=%d", occupied, c.length)
	}

	vacant := 0
	for ref := c.vacant; ref != nilRef; {
		if _, ok := seen[ref]; ok {
			return fmt.Errorf("node %d on both the list and the free list", ref)
		}
		seen[ref] = struct{}{}
		n := &c.nodes[ref]
		if n.occupied {
			return fmt.Errorf("occupied node %d on the free list", ref)
		}
		vacant++
		ref = n.next
	}
	if occupied+vacant != len(c.nodes) {
		return fmt.Errorf("%d nodes unaccounted for", len(c.nodes)-occupied-vacant)
	}
	if c.length > c.capacity {
		return fmt.Errorf("length %d exceeds capacity %d", c.length, c.capacity)
	}
	return nil
}
