package lrumap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionMisusePanics(t *testing.T) {
	require.Panics(t, func() { NewHashMap[int, int](0) })
	require.Panics(t, func() { NewHashMap[int, int](1) })
	require.Panics(t, func() { NewOrderedMap[int, int](1) })
	require.Panics(t, func() { NewHashMapWith(Options[int, int]{}) })
	require.NotPanics(t, func() { NewHashMap[int, int](2) })
}

func TestRecycledHandlePanics(t *testing.T) {
	c := newLruCache[int, int](2)
	ref, removed := c.push(1, 1)
	require.Nil(t, removed)

	c.remove(ref)
	require.Panics(t, func() { c.peek(ref) })
	require.Panics(t, func() { c.touch(ref) })
	require.Panics(t, func() { c.remove(ref) })
}

func TestFreeListRecycling(t *testing.T) {
	c := newLruCache[int, int](3)
	a, _ := c.push(1, 1)
	b, _ := c.push(2, 2)
	c.push(3, 3)
	require.Equal(t, 3, len(c.nodes))

	// Remove an interior node and the head; both slots go to the free
	// list and are reused before the arena grows.
	c.remove(b)
	c.remove(a)
	require.Equal(t, 1, c.len())

	c.push(4, 4)
	c.push(5, 5)
	require.Equal(t, 3, c.len())
	require.Equal(t, 3, len(c.nodes), "arena must not grow past its declared capacity")
	require.NoError(t, c.checkList())
}

func TestEngineEvictsOnlyWhenFull(t *testing.T) {
	c := newLruCache[string, int](2)
	_, removed := c.push("a", 1)
	require.Nil(t, removed)
	_, removed = c.push("b", 2)
	require.Nil(t, removed)

	// Full arena, empty free list: the tail is displaced in place.
	_, removed = c.push("c", 3)
	require.True(t, removed.IsEvicted())
	require.Equal(t, "a", removed.Key)
	require.Equal(t, 1, removed.Value)
	require.Equal(t, 2, c.len())
	require.NoError(t, c.checkList())

	// After a removal the free slot is preferred over eviction.
	c.remove(c.tail)
	_, removed = c.push("d", 4)
	require.Nil(t, removed)
	require.NoError(t, c.checkList())
}

func TestTouchStructuralCases(t *testing.T) {
	c := newLruCache[int, int](4)
	a, _ := c.push(1, 0)
	b, _ := c.push(2, 0)
	x, _ := c.push(3, 0)
	y, _ := c.push(4, 0)
	// Order: y x b a.

	// Touching the head is a no-op and does not advance the sequence.
	seq := c.sequence
	c.touch(y)
	require.Equal(t, seq, c.sequence)

	// Tail case.
	c.touch(a) // a y x b
	require.Equal(t, a, c.head)
	require.Equal(t, b, c.tail)
	require.NoError(t, c.checkList())

	// Interior case.
	c.touch(x) // x a y b
	require.Equal(t, x, c.head)
	require.Equal(t, b, c.tail)
	require.NoError(t, c.checkList())

	// Two-node list.
	c2 := newLruCache[int, int](2)
	p, _ := c2.push(1, 0)
	q, _ := c2.push(2, 0)
	c2.touch(p) // p q
	require.Equal(t, p, c2.head)
	require.Equal(t, q, c2.tail)
	require.NoError(t, c2.checkList())
	c2.touch(q) // q p
	require.Equal(t, q, c2.head)
	require.Equal(t, p, c2.tail)
	require.NoError(t, c2.checkList())
}

func TestStalenessMonotonicity(t *testing.T) {
	lru := NewHashMap[int, int](3)
	lru.Push(1, 1)
	lru.Push(2, 2)
	lru.Push(3, 3)

	// Entries untouched since push: the earlier push is at least as stale.
	require.Equal(t, uint64(0), lru.Entry(3).Staleness())
	require.Equal(t, uint64(1), lru.Entry(2).Staleness())
	require.Equal(t, uint64(2), lru.Entry(1).Staleness())

	// Touching resets staleness to zero and ages everyone else.
	lru.Entry(1).Touch()
	require.Equal(t, uint64(0), lru.Entry(1).Staleness())
	require.Equal(t, uint64(1), lru.Entry(3).Staleness())
	require.Equal(t, uint64(2), lru.Entry(2).Staleness())
}

func TestCheckListDetectsCorruption(t *testing.T) {
	c := newLruCache[int, int](3)
	a, _ := c.push(1, 1)
	b, _ := c.push(2, 2)
	require.NoError(t, c.checkList())

	// Introduce a cycle by hand; the guard must report it, not loop.
	c.nodes[a].next = b
	require.Error(t, c.checkList())

	// Mismatched tail.
	c.nodes[a].next = nilRef
	c.tail = b
	require.Error(t, c.checkList())
}
