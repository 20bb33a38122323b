package symtab

import (
	"fmt"
	"math"
	"testing"

	"github.com/joshuapare/sjsonkit/internal/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyString_IsSymbolZero(t *testing.T) {
	tbl := New(0, 0)

	require.Equal(t, Empty, tbl.Intern(""))
	require.Equal(t, Empty, tbl.Find(""))
	require.Equal(t, "", tbl.Resolve(Empty))
	require.Zero(t, tbl.Len(), "empty string is never stored")
}

func TestResolve_OutOfRange(t *testing.T) {
	tbl := New(1024, 8)
	tbl.Intern("hello")

	assert.Equal(t, "", tbl.Resolve(-1))
	assert.Equal(t, "", tbl.Resolve(Full))
	assert.Equal(t, "", tbl.Resolve(NotFound))
	assert.Equal(t, "", tbl.Resolve(1<<20))
}

func TestIntern_StabilityAndUniqueness(t *testing.T) {
	tbl := New(1024, 8)

	syms := make(map[string]Symbol)
	seen := make(map[Symbol]string)
	for i := range 2000 {
		s := fmt.Sprintf("key-%d", i)
		sym := tbl.Intern(s)
		require.Greater(t, sym, Empty)
		if prev, ok := seen[sym]; ok {
			t.Fatalf("symbol %d issued for both %q and %q", sym, prev, s)
		}
		syms[s] = sym
		seen[sym] = s
	}

	for s, sym := range syms {
		require.Equal(t, sym, tbl.Intern(s), "re-intern of %q", s)
		require.Equal(t, sym, tbl.Find(s))
		require.Equal(t, s, tbl.Resolve(sym))
	}
	require.Equal(t, 2000, tbl.Len())
}

func TestInsert_FullLeavesTableUntouched(t *testing.T) {
	tbl := New(MinSize, 15)
	before := append([]byte(nil), tbl.Bytes()...)

	sym, err := tbl.Insert("too much")
	require.ErrorIs(t, err, ErrFull)
	require.Equal(t, Full, sym)
	require.Equal(t, before, tbl.Bytes())
	require.Zero(t, tbl.Len())

	// Intern grows and retries.
	sym = tbl.Intern("too much")
	require.Greater(t, tbl.Size(), MinSize)
	require.Equal(t, "too much", tbl.Resolve(sym))
}

func TestGrow_PreservesSymbols(t *testing.T) {
	tbl := New(256, 4)

	syms := make([]Symbol, 0, 300)
	for i := range 300 {
		syms = append(syms, tbl.Intern(fmt.Sprintf("value/%03d", i)))
	}
	size := tbl.Size()

	require.NoError(t, tbl.Grow(size*3))
	require.Equal(t, size*3, tbl.Size())

	for i, sym := range syms {
		want := fmt.Sprintf("value/%03d", i)
		require.Equal(t, want, tbl.Resolve(sym))
		require.Equal(t, sym, tbl.Find(want))
	}
	require.Equal(t, 300, tbl.Len())
}

func TestGrow_RejectsShrink(t *testing.T) {
	tbl := New(1024, 8)
	err := tbl.Grow(512)
	require.ErrorIs(t, err, ErrShrink)
	require.Equal(t, 1024, tbl.Size())
}

func TestGrow_RejectsSymbolOverflow(t *testing.T) {
	tbl := New(1024, 8)
	err := tbl.Grow(math.MaxInt32 + 1)
	require.ErrorIs(t, err, ErrTooLarge)
	require.Equal(t, 1024, tbl.Size())
}

func TestGrow_SwitchesToWideSlots(t *testing.T) {
	tbl := New(4096, 20)
	require.False(t, tbl.Stats().Wide)

	syms := make([]Symbol, 0, 5000)
	for i := range 5000 {
		syms = append(syms, tbl.Intern(fmt.Sprintf("a-rather-long-name-%05d", i)))
	}

	st := tbl.Stats()
	require.True(t, st.Wide)
	require.Greater(t, st.StringBytes, narrowLimit)
	for i, sym := range syms {
		require.Equal(t, fmt.Sprintf("a-rather-long-name-%05d", i), tbl.Resolve(sym))
	}
}

func TestRemove_FreeSlotReuseDoesNotGrow(t *testing.T) {
	tbl := New(4096, 8)

	a := tbl.Intern("abcdefgh")
	other := tbl.Intern("other")
	size := tbl.Size()
	used := tbl.Stats().StringBytes

	require.True(t, tbl.Remove(a))
	require.Equal(t, NotFound, tbl.Find("abcdefgh"))
	require.Equal(t, "", tbl.Resolve(a), "removed bytes are zeroed")
	require.Equal(t, 1, tbl.Len())

	b := tbl.Intern("xyz")
	require.Equal(t, a, b, "first fit takes the vacated range")
	require.Equal(t, size, tbl.Size())
	require.Equal(t, used, tbl.Stats().StringBytes, "arena did not advance")

	// "abcdefgh" (8) - "xyz" (3) - NUL leaves 4 bytes at a+4.
	st := tbl.Stats()
	require.Equal(t, 1, st.FreeSlots)
	require.Equal(t, 4, st.FreeBytes)

	c := tbl.Intern("pq")
	require.Equal(t, a+4, c)
	require.Equal(t, "xyz", tbl.Resolve(b))
	require.Equal(t, "pq", tbl.Resolve(c))
	require.Equal(t, "other", tbl.Resolve(other))
	require.Equal(t, size, tbl.Size())
}

func TestRemove_KeepsProbeRunReachable(t *testing.T) {
	tbl := New(4096, 8)
	slots := tbl.Stats().Slots

	// Find three strings that share a home slot.
	byHome := make(map[uint32][]string)
	var run []string
	for i := 0; run == nil; i++ {
		s := fmt.Sprintf("k%d", i)
		h := hashString(s) % uint32(slots)
		byHome[h] = append(byHome[h], s)
		if len(byHome[h]) == 3 {
			run = byHome[h]
		}
	}

	syms := make([]Symbol, len(run))
	for i, s := range run {
		syms[i] = tbl.Intern(s)
	}

	require.True(t, tbl.Remove(syms[0]))
	require.Equal(t, syms[1], tbl.Find(run[1]))
	require.Equal(t, syms[2], tbl.Find(run[2]))

	require.True(t, tbl.Remove(syms[1]))
	require.Equal(t, syms[2], tbl.Find(run[2]))
	require.Equal(t, NotFound, tbl.Find(run[0]))
	require.Equal(t, NotFound, tbl.Find(run[1]))
}

func TestRemove_ManyKeepsRestReachable(t *testing.T) {
	tbl := New(2048, 6)

	syms := make([]Symbol, 400)
	for i := range syms {
		syms[i] = tbl.Intern(fmt.Sprintf("n%d", i))
	}
	for i := 0; i < len(syms); i += 2 {
		require.True(t, tbl.Remove(syms[i]))
	}

	for i, sym := range syms {
		s := fmt.Sprintf("n%d", i)
		if i%2 == 0 {
			assert.Equal(t, NotFound, tbl.Find(s))
			continue
		}
		assert.Equal(t, sym, tbl.Find(s))
		assert.Equal(t, s, tbl.Resolve(sym))
	}
	require.Equal(t, 200, tbl.Len())
}

func TestRemove_Invalid(t *testing.T) {
	tbl := New(1024, 8)
	sym := tbl.Intern("hello")

	assert.False(t, tbl.Remove(Empty))
	assert.False(t, tbl.Remove(-5))
	assert.False(t, tbl.Remove(sym+1), "offset inside a string is not a symbol")
	assert.True(t, tbl.Remove(sym))
	assert.False(t, tbl.Remove(sym), "double remove")
}

func TestPack_ShrinksAndKeepsSymbols(t *testing.T) {
	tbl := New(64*1024, 8)

	syms := make([]Symbol, 100)
	for i := range syms {
		syms[i] = tbl.Intern(fmt.Sprintf("packed-%d", i))
	}
	for i := range 10 {
		require.True(t, tbl.Remove(syms[i]))
	}
	before := tbl.Size()

	size := tbl.Pack()
	require.Less(t, size, before)
	require.Equal(t, size, tbl.Size())

	st := tbl.Stats()
	require.Equal(t, 90, st.Count)
	require.Equal(t, 180, st.Slots)
	require.Equal(t, headerSize+st.Slots*2+st.StringBytes, size)

	for i := 10; i < len(syms); i++ {
		s := fmt.Sprintf("packed-%d", i)
		require.Equal(t, syms[i], tbl.Find(s))
		require.Equal(t, s, tbl.Resolve(syms[i]))
	}

	// A packed table has no spare room; Intern grows it again.
	sym := tbl.Intern("after-pack")
	require.Equal(t, "after-pack", tbl.Resolve(sym))
	require.Greater(t, tbl.Size(), size)
}

func TestPack_EmptyTable(t *testing.T) {
	tbl := New(4096, 8)
	size := tbl.Pack()
	require.Equal(t, headerSize+2+1, size)
	require.Equal(t, "", tbl.Resolve(Empty))
	require.Equal(t, NotFound, tbl.Find("x"))
}

func TestAverageLength(t *testing.T) {
	tbl := New(1024, 8)
	require.Zero(t, tbl.AverageLength())

	tbl.Intern("abc") // arena: NUL + "abc\0" = 5 bytes
	require.Equal(t, 5, tbl.AverageLength())

	tbl.Intern("de") // 8 bytes over 2 strings
	require.Equal(t, 4, tbl.AverageLength())
}

func TestIntern_CutsAtNUL(t *testing.T) {
	tbl := New(1024, 8)
	require.Equal(t, tbl.Intern("ab"), tbl.Intern("ab\x00cd"))
	require.Equal(t, Empty, tbl.Intern("\x00tail"))
}

func TestEqual(t *testing.T) {
	tbl := New(1024, 8)
	sym := tbl.Intern("name")

	assert.True(t, tbl.Equal(sym, "name"))
	assert.False(t, tbl.Equal(sym, "nam"))
	assert.False(t, tbl.Equal(sym, "names"))
	assert.True(t, tbl.Equal(Empty, ""))
	assert.False(t, tbl.Equal(Empty, "x"))
	assert.False(t, tbl.Equal(NotFound, "name"))
}

func TestHeader_MirrorsCounters(t *testing.T) {
	tbl := New(2048, 8)
	tbl.Intern("one")
	tbl.Intern("two")

	region := tbl.Bytes()
	assert.Equal(t, uint64(tbl.Size()), buf.U64LE(region[offAllocated:]))
	assert.Equal(t, uint64(1+4+4), buf.U64LE(region[offStringBytes:]))
	assert.Equal(t, uint32(2), buf.U32LE(region[offCount:]))
	assert.Equal(t, uint32(tbl.Stats().Slots), buf.U32LE(region[offSlots:]))
	assert.Zero(t, buf.U32LE(region[offWide:]))
}

func BenchmarkIntern_Hit(b *testing.B) {
	tbl := New(64*1024, 12)
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
		tbl.Intern(keys[i])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl.Intern(keys[i%len(keys)])
	}
}

func BenchmarkResolve(b *testing.B) {
	tbl := New(64*1024, 12)
	syms := make([]Symbol, 1024)
	for i := range syms {
		syms[i] = tbl.Intern(fmt.Sprintf("bench-key-%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.Resolve(syms[i%len(syms)])
	}
}
