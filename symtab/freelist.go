package symtab

import "sort"

// freeSlot is an arena range vacated by Remove. length excludes the NUL
// terminator that still follows the range.
type freeSlot struct {
	sym    Symbol
	length int
}

// freeList keeps vacated ranges sorted by length for first-fit reuse.
type freeList struct {
	slots []freeSlot
	bytes int
}

// insert adds fs keeping the list sorted by length. Ranges with equal length
// keep insertion order.
func (fl *freeList) insert(fs freeSlot) {
	if fs.length <= 0 {
		return
	}
	i := sort.Search(len(fl.slots), func(i int) bool { return fl.slots[i].length > fs.length })
	fl.slots = append(fl.slots, freeSlot{})
	copy(fl.slots[i+1:], fl.slots[i:])
	fl.slots[i] = fs
	fl.bytes += fs.length
}

// candidate returns the index of the first range that can hold n bytes, or -1.
// The list is not modified.
func (fl *freeList) candidate(n int) int {
	i := sort.Search(len(fl.slots), func(i int) bool { return fl.slots[i].length >= n })
	if i == len(fl.slots) {
		return -1
	}
	return i
}

// take removes the range at index i for a string of n bytes and requeues the
// tail left over after the string and its terminator.
func (fl *freeList) take(i, n int) Symbol {
	fs := fl.slots[i]
	fl.slots = append(fl.slots[:i], fl.slots[i+1:]...)
	fl.bytes -= fs.length

	if rest := fs.length - n - 1; rest > 0 {
		fl.insert(freeSlot{sym: fs.sym + Symbol(n+1), length: rest})
	}
	return fs.sym
}

func (fl *freeList) len() int { return len(fl.slots) }

func (fl *freeList) reset() {
	fl.slots = nil
	fl.bytes = 0
}
