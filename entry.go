package lrumap

import "iter"

// EntryRef is a cursor to one entry of a map. It supports peeking, touching,
// traversing the recency list in either direction, and removing entries while
// keeping the owning index in sync.
//
// A cursor borrows its owning map exclusively: while a cursor is live, no
// other cursor or mutating call on the same map may be used. This is an
// aliasing discipline, not a runtime lock; violating it leaves the cursor
// pointing at a slot that may have been recycled.
//
// Reading the value through Value touches the entry once per position;
// PeekValue never does.
type EntryRef[K any, V any] struct {
	owner entryCache[K, V]
	node  nodeRef

	// accessed is set after Value touches the current position and reset
	// whenever the cursor moves.
	accessed bool
}

func newEntryRef[K any, V any](owner entryCache[K, V], ref nodeRef) *EntryRef[K, V] {
	return &EntryRef[K, V]{owner: owner, node: ref}
}

// Key returns the key of the current entry without touching it.
func (e *EntryRef[K, V]) Key() K {
	return e.owner.list().peek(e.node).key
}

// PeekValue returns the value of the current entry without touching it.
func (e *EntryRef[K, V]) PeekValue() V {
	return e.owner.list().peek(e.node).value
}

// Value returns the value of the current entry, touching it the first time
// it is called for the current position. Subsequent calls read without
// re-touching until the cursor moves.
func (e *EntryRef[K, V]) Value() V {
	if !e.accessed {
		e.accessed = true
		e.Touch()
	}
	return e.owner.list().peek(e.node).value
}

// Touch marks the current entry as the most recently used, regardless of
// whether Value already touched it.
func (e *EntryRef[K, V]) Touch() {
	e.owner.list().touch(e.node)
}

// Staleness returns the number of recency-affecting mutations since the
// current entry was last touched.
func (e *EntryRef[K, V]) Staleness() uint64 {
	l := e.owner.list()
	return l.sequence - l.peek(e.node).lastAccess
}

// MoveNext advances the cursor one step toward the least recently used end.
// It returns false, leaving the cursor in place, if the current entry is
// already the tail.
func (e *EntryRef[K, V]) MoveNext() bool {
	next := e.owner.list().peek(e.node).next
	if next == nilRef {
		return false
	}
	e.node = next
	e.accessed = false
	return true
}

// MovePrevious advances the cursor one step toward the most recently used
// end. It returns false, leaving the cursor in place, if the current entry
// is already the head.
func (e *EntryRef[K, V]) MovePrevious() bool {
	prev := e.owner.list().peek(e.node).prev
	if prev == nilRef {
		return false
	}
	e.node = prev
	e.accessed = false
	return true
}

// Forward returns a lazy, restartable sequence starting at the current entry
// and walking toward the least recently used end. Each call produces an
// independent pass.
func (e *EntryRef[K, V]) Forward() iter.Seq2[K, V] {
	return forwardSeq(e.owner.list(), func() nodeRef { return e.node })
}

// Backward returns a lazy, restartable sequence starting at the entry just
// before the current one (toward the most recently used end) and walking to
// the head. The current entry itself is not yielded.
func (e *EntryRef[K, V]) Backward() iter.Seq2[K, V] {
	l := e.owner.list()
	return backwardSeq(l, func() nodeRef { return l.peek(e.node).prev })
}

// removeWithDirection removes the current entry through the owning adapter
// and repositions the cursor at the requested neighbor. ok is false when no
// such neighbor exists; the cursor is dead in that case.
func (e *EntryRef[K, V]) removeWithDirection(moveNext bool) (key K, value V, ok bool) {
	key, value, next, prev := e.owner.removeNode(e.node)
	switch {
	case moveNext && next != nilRef:
		e.node = next
	case !moveNext && prev != nilRef:
		e.node = prev
	default:
		e.node = nilRef
		return key, value, false
	}
	e.accessed = false
	return key, value, true
}

// Take removes the current entry and returns its key and value. The cursor
// must not be used afterwards.
func (e *EntryRef[K, V]) Take() (K, V) {
	key, value, _ := e.removeWithDirection(true)
	return key, value
}

// TakeAndMoveNext removes the current entry and returns its key and value
// plus a cursor at the next entry toward the least recently used end, or nil
// if the removed entry was the tail.
func (e *EntryRef[K, V]) TakeAndMoveNext() (K, V, *EntryRef[K, V]) {
	key, value, ok := e.removeWithDirection(true)
	if !ok {
		return key, value, nil
	}
	return key, value, e
}

// TakeAndMovePrevious removes the current entry and returns its key and
// value plus a cursor at the previous entry toward the most recently used
// end, or nil if the removed entry was the head.
func (e *EntryRef[K, V]) TakeAndMovePrevious() (K, V, *EntryRef[K, V]) {
	key, value, ok := e.removeWithDirection(false)
	if !ok {
		return key, value, nil
	}
	return key, value, e
}

// RemoveMovingNext removes the current entry and returns a cursor at the
// next entry, or nil if the removed entry was the tail.
func (e *EntryRef[K, V]) RemoveMovingNext() *EntryRef[K, V] {
	_, _, ref := e.TakeAndMoveNext()
	return ref
}

// RemoveMovingPrevious removes the current entry and returns a cursor at the
// previous entry, or nil if the removed entry was the head.
func (e *EntryRef[K, V]) RemoveMovingPrevious() *EntryRef[K, V] {
	_, _, ref := e.TakeAndMovePrevious()
	return ref
}
