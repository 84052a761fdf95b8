package orderedset_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/samueldeng/clist/orderedset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoarse() *orderedset.Coarse[int] {
	return orderedset.NewCoarse(minInt, maxInt, intLess)
}

func TestCoarseBasicSequence(t *testing.T) {
	s := newCoarse()

	assert.True(t, s.Add(10))
	assert.False(t, s.Add(10))
	assert.True(t, s.Contains(10))
	assert.True(t, s.Remove(10))
	assert.False(t, s.Contains(10))
	assert.False(t, s.Remove(10))
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.CheckInvariants())
}

// Scenario 6: concurrent unique adds across disjoint ranges.
func TestCoarseConcurrentUniqueAdds(t *testing.T) {
	s := newCoarse()
	const workers = 8
	const n = 4000

	var wg sync.WaitGroup
	perWorker := n / workers
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			vals := make([]int, perWorker)
			for i := range vals {
				vals[i] = w*perWorker + i
			}
			rand.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
			for _, v := range vals {
				s.Add(v)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, n, s.Size())
	for i := 0; i < n; i++ {
		assert.True(t, s.Contains(i))
	}
	assert.True(t, s.CheckInvariants())
}
