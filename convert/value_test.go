package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sjsonkit/config"
)

func TestFromValue_ToValue(t *testing.T) {
	in := map[string]any{
		"name":  "x",
		"count": 3,
		"ok":    true,
		"none":  nil,
		"list":  []any{1.5, "two", map[string]any{"deep": false}},
		"env":   map[string]string{"HOME": "/root"},
		"raw":   config.RawValue(7),
	}

	store := config.New(config.Object, config.Options{PreserveOrder: true})
	defer store.Close()
	require.NoError(t, FromValue(store.Root(), in))

	require.Equal(t, []string{"count", "env", "list", "name", "none", "ok", "raw"}, names(store.Root()))

	want := map[string]any{
		"name":  "x",
		"count": 3.0,
		"ok":    true,
		"none":  nil,
		"list":  []any{1.5, "two", map[string]any{"deep": false}},
		"env":   map[string]any{"HOME": "/root"},
		"raw":   config.RawValue(7),
	}
	require.Equal(t, want, ToValue(store.Root()))
}

func TestFromValue_Unsupported(t *testing.T) {
	store := config.New(config.Object, config.Options{})
	defer store.Close()

	err := FromValue(store.Root().Add("ch"), make(chan int))
	require.ErrorIs(t, err, config.ErrUnsupportedValue)
}

func TestToValue_SkipsUndefined(t *testing.T) {
	store := config.New(config.Object, config.Options{})
	defer store.Close()
	store.Root().Add("pending")
	store.Root().Add("set").SetNumber(1)

	require.Equal(t, map[string]any{"set": 1.0}, ToValue(store.Root()))
	require.Nil(t, ToValue(config.Handle{}))
}
