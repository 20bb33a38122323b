package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func numbers(h Handle) []float64 {
	var out []float64
	for c := range h.Children() {
		out = append(out, c.AsNumber(-1))
	}
	return out
}

func TestPush_KeepsOrderWithoutPreserveOrder(t *testing.T) {
	s := New(Object, Options{})
	arr := s.Root().SetArray("arr")
	arr.PushNumber(1)
	arr.PushNumber(2)
	arr.PushNumber(3)
	require.Equal(t, []float64{1, 2, 3}, numbers(arr))
}

func TestPop(t *testing.T) {
	s := New(Object, Options{})
	arr := s.Root().SetArray("arr")
	arr.PushNumber(1.0)
	arr.PushNumber(2.0)
	tail := arr.PushNumber(3.0)

	require.True(t, arr.Pop())
	require.Equal(t, 2, arr.Len())
	require.False(t, arr.At(2).Valid())
	require.Equal(t, 2.0, arr.At(1).AsNumber(0))
	require.False(t, tail.Valid(), "popped element is tombstoned")

	require.True(t, arr.Pop())
	require.True(t, arr.Pop())
	require.Zero(t, arr.Len())
	require.False(t, arr.Pop(), "pop on empty array")

	// Pushing after emptying relinks from the head.
	arr.PushNumber(9)
	require.Equal(t, []float64{9}, numbers(arr))
}

func TestPop_NotAnArray(t *testing.T) {
	s := New(Object, Options{})
	root := s.Root()
	root.Add("a")
	require.False(t, root.Pop())
	require.Equal(t, 1, root.Len())
}

func TestPush_CoercesToArray(t *testing.T) {
	s := New(Object, Options{})
	h := s.Root().GetOrCreate("v").SetString("x")
	h.PushBool(true)
	require.Equal(t, Array, h.Kind())
	require.Equal(t, 1, h.Len())
	require.Equal(t, True, h.At(0).Kind())
}

func TestPushTypedVariants(t *testing.T) {
	s := New(Array, Options{})
	root := s.Root()
	root.PushBool(false)
	root.PushNumber(1.5)
	root.PushString("s")
	root.PushRaw(RawValue(7))
	root.PushNull()
	root.PushObject().Add("k")
	root.PushArray().PushNumber(1)

	kinds := make([]Kind, 0, root.Len())
	for c := range root.Children() {
		kinds = append(kinds, c.Kind())
	}
	require.Equal(t, []Kind{False, Number, String, Raw, Nil, Object, Array}, kinds)
}

func TestInsertAt(t *testing.T) {
	s := New(Array, Options{})
	arr := s.Root()
	arr.PushNumber(1)
	arr.PushNumber(3)

	arr.InsertNumberAt(1, 2)
	require.Equal(t, []float64{1, 2, 3}, numbers(arr))

	arr.InsertNumberAt(0, 0)
	require.Equal(t, []float64{0, 1, 2, 3}, numbers(arr))

	arr.InsertNumberAt(100, 4)
	require.Equal(t, []float64{0, 1, 2, 3, 4}, numbers(arr))
	require.Equal(t, 5, arr.Len())

	arr.InsertStringAt(2, "mid")
	require.Equal(t, "mid", arr.At(2).AsString(""))
	arr.InsertBoolAt(0, true)
	require.Equal(t, True, arr.At(0).Kind())
	require.Equal(t, Object, arr.InsertObjectAt(1).Kind())
	require.Equal(t, Array, arr.InsertArrayAt(1).Kind())
	require.Equal(t, 9, arr.Len())
}

func TestInsertAt_EmptyArray(t *testing.T) {
	s := New(Object, Options{})
	arr := s.Root().SetArray("a")
	arr.InsertNumberAt(3, 1)
	require.Equal(t, []float64{1}, numbers(arr))
}

func TestSort(t *testing.T) {
	s := New(Array, Options{})
	arr := s.Root()
	for _, v := range []float64{3, 1, 2, 5, 4} {
		arr.PushNumber(v)
	}

	require.True(t, arr.Sort(func(a, b Handle) bool { return a.AsNumber(0) < b.AsNumber(0) }))
	require.Equal(t, []float64{1, 2, 3, 4, 5}, numbers(arr))

	require.True(t, arr.Sort(func(a, b Handle) bool { return a.AsNumber(0) > b.AsNumber(0) }))
	require.Equal(t, []float64{5, 4, 3, 2, 1}, numbers(arr))

	// The chain is still well formed for appends.
	arr.PushNumber(0)
	require.Equal(t, []float64{5, 4, 3, 2, 1, 0}, numbers(arr))
}

func TestSort_ObjectFieldsByName(t *testing.T) {
	s := New(Object, Options{})
	root := s.Root()
	for _, k := range []string{"b", "c", "a"} {
		root.Add(k)
	}
	root.Sort(func(a, b Handle) bool { return a.Name() < b.Name() })
	require.Equal(t, []string{"a", "b", "c"}, names(root))
}

func TestSort_EmptyIsNoop(t *testing.T) {
	s := New(Array, Options{})
	require.False(t, s.Root().Sort(func(a, b Handle) bool { return false }))
	require.False(t, s.Root().PushNumber(1).Sort(func(a, b Handle) bool { return false }))
}

func TestClear(t *testing.T) {
	s := New(Array, Options{})
	arr := s.Root()
	a := arr.PushNumber(1)
	arr.PushNumber(2)

	arr.Clear()
	require.Zero(t, arr.Len())
	require.Equal(t, Array, arr.Kind())
	require.False(t, arr.At(0).Valid())
	require.False(t, a.Valid())
	require.Equal(t, 2, s.Stats().Tombstones)
}
