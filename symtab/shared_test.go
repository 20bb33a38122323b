package symtab

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShared_ZeroValueAllocatesOnFirstIntern(t *testing.T) {
	var s Shared

	assert.Equal(t, NotFound, s.Find("x"))
	assert.Equal(t, Empty, s.Find(""))
	assert.Equal(t, "", s.Resolve(1))
	assert.Zero(t, s.Pack())
	assert.Equal(t, Stats{}, s.Stats())

	sym := s.Intern("x")
	require.Greater(t, sym, Empty)
	require.Equal(t, "x", s.Resolve(sym))
	require.Equal(t, defaultSharedSize, s.Stats().Allocated)
}

func TestShared_ConcurrentInternAgrees(t *testing.T) {
	s := NewShared(1024, 8)

	const workers = 8
	const keys = 500

	results := make([][]Symbol, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]Symbol, keys)
			for i := range keys {
				// Interleave directions so writers race on the same keys.
				k := i
				if w%2 == 1 {
					k = keys - 1 - i
				}
				out[k] = s.Intern(fmt.Sprintf("shared-%d", k))
				_ = s.Find(fmt.Sprintf("shared-%d", i))
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w], "worker %d saw different symbols", w)
	}
	for i, sym := range results[0] {
		require.Equal(t, fmt.Sprintf("shared-%d", i), s.Resolve(sym))
	}
	require.Equal(t, keys, s.Stats().Count)
}

func TestShared_RemoveAndClose(t *testing.T) {
	s := NewShared(1024, 8)
	sym := s.Intern("gone")

	require.True(t, s.Remove(sym))
	require.False(t, s.Remove(sym))
	require.Equal(t, NotFound, s.Find("gone"))

	s.Close()
	require.Equal(t, "", s.Resolve(sym))
	require.False(t, s.Remove(sym))
}

func TestPackageDefault_Lifecycle(t *testing.T) {
	Shutdown()
	t.Cleanup(Shutdown)

	sym := Encode("global")
	require.Greater(t, sym, Empty)
	require.Equal(t, "global", Decode(sym))
	require.Same(t, Default(), Default())

	// Initialize on an allocated default is a no-op.
	Initialize()
	require.Equal(t, sym, Default().Find("global"))

	require.Positive(t, Compress())
	require.Equal(t, "global", Decode(sym))

	Shutdown()
	require.Equal(t, NotFound, Default().Find("global"), "shutdown discards the table")
}
