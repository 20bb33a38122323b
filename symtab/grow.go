package symtab

import (
	"fmt"
	"math"

	"github.com/joshuapare/sjsonkit/internal/buf"
)

// Grow reallocates the region to size bytes (0 doubles it), recomputes the
// index geometry from the current average string length and rehashes every
// stored string. Symbols and the free list are preserved.
func (t *Table) Grow(size int) error {
	cur := t.allocated()
	if size == 0 {
		doubled, ok := buf.MulOverflowSafe(cur, growthFactor)
		if !ok {
			return ErrTooLarge
		}
		size = doubled
	}
	if size > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	if size < cur {
		return fmt.Errorf("%w: %d < %d", ErrShrink, size, cur)
	}

	avg := defaultAverageLength
	if t.count() > 0 {
		avg = t.AverageLength()
	}

	used := t.stringBytes()
	slots := slotsFor(size, avg, t.slots())
	wide := size-headerSize-4*slots > narrowLimit
	slots = fitSlots(size, slots, slotWidth(wide), used)
	if slots < t.count()+1 {
		return fmt.Errorf("%w: %d bytes cannot index %d strings", ErrShrink, size, t.count())
	}

	t.rebuild(size, slots, wide)
	return nil
}

// Pack shrinks the region to exactly fit the live strings and returns the
// new size. Free ranges inside the arena are kept for reuse.
func (t *Table) Pack() int {
	count := t.count()
	slots := max(count*growthFactor, count+1, 1)
	used := t.stringBytes()
	wide := used > narrowLimit

	t.rebuild(headerSize+slots*slotWidth(wide)+used, slots, wide)
	return t.allocated()
}

// rebuild moves the arena into a fresh region with the given geometry and
// rehashes it. The arena is scanned end to end; zero bytes left by Remove
// are skipped.
func (t *Table) rebuild(size, slots int, wide bool) {
	used := t.stringBytes()
	old := t.arena()[:used]

	t.region = make([]byte, size)
	t.setAllocated(size)
	t.setStringBytes(used)
	t.setSlots(slots)
	t.setWide(wide)
	copy(t.arena(), old)

	a := t.arena()[:used]
	live := 0
	for off := 1; off < used; {
		if a[off] == 0 {
			off++
			continue
		}
		h, n := hashBytes(a[off:])
		i := int(h % uint32(slots))
		for t.slot(i) != 0 {
			i = (i + 1) % slots
		}
		t.setSlot(i, Symbol(off))
		live++
		off += n + 1
	}
	t.setCount(live)
}
