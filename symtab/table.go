package symtab

import (
	"bytes"
	"math"

	"github.com/joshuapare/sjsonkit/internal/buf"
)

// Header field offsets.
const (
	offAllocated   = 0x00
	offStringBytes = 0x08
	offCount       = 0x10
	offSlots       = 0x14
	offWide        = 0x18
	offReserved    = 0x1C

	headerSize = 0x20
)

const (
	// growthFactor is the minimum slots/count ratio and the default grow multiplier.
	growthFactor = 2

	// narrowLimit is the arena size up to which 16-bit hash slots are used.
	narrowLimit = 64 * 1024

	// defaultAverageLength sizes the index when nothing is known about the strings.
	defaultAverageLength = 15

	// MinSize is the smallest region a Table can be allocated with.
	MinSize = headerSize + 4 + 4
)

// Table is a single-owner string interner. See the package documentation for
// the region layout.
type Table struct {
	region []byte
	free   freeList
}

// Stats summarizes the state of a table.
type Stats struct {
	Allocated     int  // region size in bytes
	StringBytes   int  // arena bytes in use, including the leading NUL
	Count         int  // live strings
	Slots         int  // hash index slots
	Wide          bool // 32-bit slots
	FreeSlots     int  // ranges on the free list
	FreeBytes     int  // bytes on the free list
	AverageLength int
}

// New allocates a table of the given size, sizing the index for strings of
// averageLength bytes. Sizes under MinSize are raised to MinSize and a
// non-positive averageLength uses a default.
func New(size, averageLength int) *Table {
	if size < MinSize {
		size = MinSize
	}
	if averageLength <= 0 {
		averageLength = defaultAverageLength
	}

	slots := slotsFor(size, averageLength, 1)
	wide := size-headerSize-4*slots > narrowLimit
	slots = fitSlots(size, slots, slotWidth(wide), 1)

	t := &Table{region: make([]byte, size)}
	t.setAllocated(size)
	t.setSlots(slots)
	t.setWide(wide)
	t.setCount(0)
	// Offset 0 holds the empty string.
	t.setStringBytes(1)
	return t
}

// slotsFor derives a slot count from a region size and an average string length.
func slotsFor(size, averageLength, floor int) int {
	perString := float64(averageLength) + 1 + 2*growthFactor
	fit := float64(size-headerSize) / perString
	n := int(fit * growthFactor)
	if n < floor {
		n = floor
	}
	return n
}

// fitSlots lowers slots until an arena of at least arena bytes fits in size.
func fitSlots(size, slots, width, arena int) int {
	limit := (size - headerSize - arena) / width
	if slots > limit {
		slots = limit
	}
	if slots < 1 {
		slots = 1
	}
	return slots
}

func slotWidth(wide bool) int {
	if wide {
		return 4
	}
	return 2
}

func (t *Table) allocated() int       { return int(buf.U64LE(t.region[offAllocated:])) }
func (t *Table) stringBytes() int     { return int(buf.U64LE(t.region[offStringBytes:])) }
func (t *Table) count() int           { return int(buf.U32LE(t.region[offCount:])) }
func (t *Table) slots() int           { return int(buf.U32LE(t.region[offSlots:])) }
func (t *Table) wide() bool           { return buf.U32LE(t.region[offWide:]) != 0 }
func (t *Table) width() int           { return slotWidth(t.wide()) }
func (t *Table) arenaOffset() int     { return headerSize + t.slots()*t.width() }
func (t *Table) arena() []byte        { return t.region[t.arenaOffset():] }
func (t *Table) setAllocated(n int)   { buf.PutU64LE(t.region, offAllocated, uint64(n)) }
func (t *Table) setStringBytes(n int) { buf.PutU64LE(t.region, offStringBytes, uint64(n)) }
func (t *Table) setCount(n int)       { buf.PutU32LE(t.region, offCount, uint32(n)) }
func (t *Table) setSlots(n int)       { buf.PutU32LE(t.region, offSlots, uint32(n)) }

func (t *Table) setWide(w bool) {
	var v uint32
	if w {
		v = 1
	}
	buf.PutU32LE(t.region, offWide, v)
}

// slot reads hash slot i.
func (t *Table) slot(i int) Symbol {
	if t.wide() {
		return Symbol(buf.U32LE(t.region[headerSize+4*i:]))
	}
	return Symbol(buf.U16LE(t.region[headerSize+2*i:]))
}

func (t *Table) setSlot(i int, sym Symbol) {
	if t.wide() {
		buf.PutU32LE(t.region, headerSize+4*i, uint32(sym))
		return
	}
	buf.PutU16LE(t.region, headerSize+2*i, uint16(sym))
}

// matches reports whether the arena holds exactly s at sym.
func (t *Table) matches(sym Symbol, s string) bool {
	a := t.arena()[:t.stringBytes()]
	b, ok := buf.Slice(a, int(sym), len(s)+1)
	return ok && b[len(s)] == 0 && string(b[:len(s)]) == s
}

// probe walks the index from s's home slot. It returns the slot holding s,
// or the first empty slot with found = false. slot is -1 when every slot is
// occupied by other strings.
func (t *Table) probe(s string, h uint32) (slot int, found bool) {
	n := t.slots()
	i := int(h % uint32(n))
	for range n {
		sym := t.slot(i)
		if sym == 0 {
			return i, false
		}
		if t.matches(sym, s) {
			return i, true
		}
		i = (i + 1) % n
	}
	return -1, false
}

// Insert interns s without growing. It returns Full and ErrFull when the
// table has to grow first; nothing is modified in that case.
// Strings are cut at their first NUL byte.
func (t *Table) Insert(s string) (Symbol, error) {
	s = clip(s)
	if s == "" {
		return Empty, nil
	}

	slot, found := t.probe(s, hashString(s))
	if found {
		return t.slot(slot), nil
	}

	count, slots := t.count(), t.slots()
	if slot < 0 || count+1 >= slots || float64(slots)/float64(count+1) < growthFactor {
		return Full, ErrFull
	}

	// Pick the destination first and commit only after every check passed.
	n := len(s)
	sym := Symbol(t.stringBytes())
	reuse := t.free.candidate(n)
	if reuse >= 0 {
		sym = t.free.slots[reuse].sym
	}

	end, ok := buf.AddOverflowSafe(int(sym), n+1)
	if !ok || !buf.Has(t.arena(), int(sym), n+1) {
		return Full, ErrFull
	}
	if !t.wide() && sym > math.MaxUint16 {
		return Full, ErrFull
	}

	if reuse >= 0 {
		t.free.take(reuse, n)
	}

	a := t.arena()
	copy(a[sym:], s)
	a[end-1] = 0

	t.setSlot(slot, sym)
	t.setCount(count + 1)
	if t.stringBytes() < end {
		t.setStringBytes(end)
	}
	return sym, nil
}

// Intern inserts s, growing the table until the insert succeeds. It returns
// Full only when the region cannot grow any further.
func (t *Table) Intern(s string) Symbol {
	for {
		sym, err := t.Insert(s)
		if err == nil {
			return sym
		}
		// Grow(0) doubles, so the loop makes progress until ErrTooLarge.
		if err := t.Grow(0); err != nil {
			return Full
		}
	}
}

// Find returns the symbol of s, or NotFound. "" is always Empty.
func (t *Table) Find(s string) Symbol {
	s = clip(s)
	if s == "" {
		return Empty
	}
	slot, found := t.probe(s, hashString(s))
	if !found {
		return NotFound
	}
	return t.slot(slot)
}

// Resolve returns the string named by sym. Empty, negative and out-of-range
// symbols resolve to "".
func (t *Table) Resolve(sym Symbol) string {
	if sym <= 0 || int(sym) >= t.stringBytes() {
		return ""
	}
	a := t.arena()[:t.stringBytes()]
	end := bytes.IndexByte(a[sym:], 0)
	if end < 0 {
		return string(a[sym:])
	}
	return string(a[sym : int(sym)+end])
}

// Equal reports whether sym names s.
func (t *Table) Equal(sym Symbol, s string) bool {
	s = clip(s)
	if sym == Empty {
		return s == ""
	}
	if sym < 0 || int(sym) >= t.stringBytes() {
		return false
	}
	return t.matches(sym, s)
}

// Remove drops the string named by sym. Its bytes are zeroed and the range is
// kept for reuse. Returns false when sym does not name a live string.
func (t *Table) Remove(sym Symbol) bool {
	s := t.Resolve(sym)
	if s == "" {
		return false
	}

	slot, found := t.probe(s, hashString(s))
	if !found || t.slot(slot) != sym {
		return false
	}
	t.deleteSlot(slot)

	t.free.insert(freeSlot{sym: sym, length: len(s)})
	clear(t.arena()[sym : int(sym)+len(s)])
	t.setCount(t.count() - 1)
	return true
}

// deleteSlot empties slot i and shifts later members of the probe run back so
// every remaining string stays reachable from its home slot.
func (t *Table) deleteSlot(i int) {
	n := t.slots()
	t.setSlot(i, 0)
	a := t.arena()

	for j := (i + 1) % n; ; j = (j + 1) % n {
		sym := t.slot(j)
		if sym == 0 {
			return
		}
		h, _ := hashBytes(a[sym:])
		home := int(h % uint32(n))

		// Leave the entry when its home lies cyclically in (i, j].
		if i <= j {
			if i < home && home <= j {
				continue
			}
		} else if i < home || home <= j {
			continue
		}

		t.setSlot(i, sym)
		t.setSlot(j, 0)
		i = j
	}
}

// AverageLength returns ceil(arena bytes / count), or 0 for an empty table.
func (t *Table) AverageLength() int {
	c := t.count()
	if c == 0 {
		return 0
	}
	return int(math.Ceil(float64(t.stringBytes()) / float64(c)))
}

// Len returns the number of live strings.
func (t *Table) Len() int { return t.count() }

// Size returns the region size in bytes.
func (t *Table) Size() int { return t.allocated() }

// Stats returns a snapshot of the table's counters.
func (t *Table) Stats() Stats {
	return Stats{
		Allocated:     t.allocated(),
		StringBytes:   t.stringBytes(),
		Count:         t.count(),
		Slots:         t.slots(),
		Wide:          t.wide(),
		FreeSlots:     t.free.len(),
		FreeBytes:     t.free.bytes,
		AverageLength: t.AverageLength(),
	}
}

// Bytes exposes the packed region. The slice is invalidated by Grow and Pack.
func (t *Table) Bytes() []byte { return t.region }
