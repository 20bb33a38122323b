package convert

import (
	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/symtab"
)

// MaxDepth bounds container nesting during imports.
const MaxDepth = 512

// Options controls imports.
type Options struct {
	// PreserveOrder keeps fields in document order.
	PreserveOrder bool

	// Interner, when set, backs the resulting store instead of an owned table.
	Interner symtab.Interner
}

// DefaultOptions keeps document order and uses an owned string table.
func DefaultOptions() Options {
	return Options{PreserveOrder: true}
}

func (o Options) newStore(root config.Kind) *config.Store {
	copts := config.Options{PreserveOrder: o.PreserveOrder}
	if o.Interner != nil {
		return config.NewWithInterner(root, copts, o.Interner)
	}
	return config.New(root, copts)
}
