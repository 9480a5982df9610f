package lrumap

import (
	"testing"
)

// modelLRU is a naive reference implementation: a slice of pairs ordered
// from most to least recently used. Everything is O(n); only correctness
// matters here.
type modelLRU struct {
	capacity int
	pairs    []Pair[byte, int]
}

func (m *modelLRU) find(key byte) int {
	for i, p := range m.pairs {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func (m *modelLRU) push(key byte, value int) {
	if i := m.find(key); i >= 0 {
		m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
		m.pairs = append([]Pair[byte, int]{{Key: key, Value: value}}, m.pairs...)
		return
	}
	m.pairs = append([]Pair[byte, int]{{Key: key, Value: value}}, m.pairs...)
	if len(m.pairs) > m.capacity {
		m.pairs = m.pairs[:m.capacity]
	}
}

func (m *modelLRU) get(key byte) (int, bool) {
	i := m.find(key)
	if i < 0 {
		return 0, false
	}
	p := m.pairs[i]
	m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
	m.pairs = append([]Pair[byte, int]{p}, m.pairs...)
	return p.Value, true
}

func (m *modelLRU) remove(key byte) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}
	m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
	return true
}

func (m *modelLRU) keys() []byte {
	keys := make([]byte, 0, len(m.pairs))
	for _, p := range m.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Fuzz the hash adapter against the reference model with arbitrary
// push/get/peek/remove programs. Guards against panics and checks the
// structural invariants after every step.
func FuzzHashMapModel(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	f.Add([]byte{0x01, 0x11, 0x21, 0x31, 0x01})
	f.Add([]byte{0x00, 0x10, 0x20, 0x30, 0x02, 0x12, 0x22, 0x32})
	f.Add([]byte{0xff, 0x7f, 0x3f, 0x1f, 0x0f})

	f.Fuzz(func(t *testing.T, program []byte) {
		const capacity = 4
		lru := NewHashMap[byte, int](capacity)
		model := &modelLRU{capacity: capacity}

		for step, op := range program {
			key := op & 0x0f // small keyspace forces collisions and evictions
			switch (op >> 4) % 4 {
			case 0, 1: // push dominates so the map actually fills
				lru.Push(key, step)
				model.push(key, step)
			case 2:
				got, ok := lru.Get(key)
				want, wantOK := model.get(key)
				if ok != wantOK || got != want {
					t.Fatalf("step %d: Get(%d) = (%d, %v), model says (%d, %v)", step, key, got, ok, want, wantOK)
				}
			case 3:
				removed := false
				if e := lru.Entry(key); e != nil {
					e.Take()
					removed = true
				}
				if removed != model.remove(key) {
					t.Fatalf("step %d: removal of %d disagrees with the model", step, key)
				}
			}

			if lru.Len() > capacity {
				t.Fatalf("step %d: len %d exceeds capacity", step, lru.Len())
			}
			if lru.Len() != len(model.pairs) {
				t.Fatalf("step %d: len %d, model has %d", step, lru.Len(), len(model.pairs))
			}
			if err := lru.cache.checkList(); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}

			// Recency order must match the model exactly.
			var keys []byte
			for k := range lru.All() {
				keys = append(keys, k)
			}
			want := model.keys()
			if len(keys) != len(want) {
				t.Fatalf("step %d: order %v, model %v", step, keys, want)
			}
			for i := range keys {
				if keys[i] != want[i] {
					t.Fatalf("step %d: order %v, model %v", step, keys, want)
				}
			}
		}
	})
}
