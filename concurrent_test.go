package lrumap

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// The map itself is single-owner; sharing it across goroutines requires an
// external mutex around every call. This pins down that pattern: a mixed
// workload behind one lock must pass under -race and keep the structure
// intact.
func TestExternalLocking(t *testing.T) {
	const (
		capacity = 128
		workers  = 8
		opsEach  = 5_000
		keyspace = 512
	)

	var mu sync.Mutex
	lru := NewHashMap[int, int](capacity)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(int64(w)*9973 + 1))
			for i := 0; i < opsEach; i++ {
				k := r.Intn(keyspace)
				mu.Lock()
				switch r.Intn(10) {
				case 0: // ~10% — cursor removal
					if e := lru.Entry(k); e != nil {
						e.Take()
					}
				case 1, 2, 3: // ~30% — push
					lru.Push(k, i)
				default: // ~60% — get
					lru.Get(k)
				}
				n := lru.Len()
				mu.Unlock()
				if n > capacity {
					return fmt.Errorf("len %d exceeds capacity", n)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, lru.cache.checkList())
}
