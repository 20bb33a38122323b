package symtab

import (
	"sync"

	"github.com/joshuapare/sjsonkit/internal/logger"
)

const (
	// defaultSharedSize is the initial region size of a lazily allocated Shared table.
	defaultSharedSize = 32 * 1024

	// defaultSharedAverage is the average string length assumed by Shared tables.
	defaultSharedAverage = 16
)

// Shared is a Table guarded by a sync.RWMutex so it can be used from many
// goroutines. Lookups take the read lock; inserts, removals and packing take
// the write lock and run to completion before other writers proceed.
//
// The zero value is ready to use and allocates its table on first insert.
type Shared struct {
	mu      sync.RWMutex
	t       *Table
	size    int
	average int
}

// NewShared returns a Shared whose table is allocated immediately.
func NewShared(size, averageLength int) *Shared {
	return &Shared{
		t:       New(size, averageLength),
		size:    size,
		average: averageLength,
	}
}

// table returns the table, allocating it if needed. Caller holds the write lock.
func (s *Shared) table() *Table {
	if s.t == nil {
		size, avg := s.size, s.average
		if size == 0 {
			size = defaultSharedSize
		}
		if avg == 0 {
			avg = defaultSharedAverage
		}
		s.t = New(size, avg)
	}
	return s.t
}

// Intern inserts str, growing the table as needed.
func (s *Shared) Intern(str string) Symbol {
	if clip(str) == "" {
		return Empty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table().Intern(str)
}

// Find returns the symbol of str or NotFound.
func (s *Shared) Find(str string) Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		if clip(str) == "" {
			return Empty
		}
		return NotFound
	}
	return s.t.Find(str)
}

// Resolve returns the string named by sym, or "".
func (s *Shared) Resolve(sym Symbol) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		return ""
	}
	return s.t.Resolve(sym)
}

// Remove drops the string named by sym.
func (s *Shared) Remove(sym Symbol) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.t == nil {
		return false
	}
	return s.t.Remove(sym)
}

// Pack shrinks the table to its live strings and returns the new size.
func (s *Shared) Pack() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.t == nil {
		return 0
	}
	return s.t.Pack()
}

// Stats returns a snapshot of the table counters. A table that was never
// allocated reports zeroes.
func (s *Shared) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		return Stats{}
	}
	return s.t.Stats()
}

// Close releases the table. A later Intern allocates a fresh one, so symbols
// obtained before Close must not be reused.
func (s *Shared) Close() {
	s.mu.Lock()
	s.t = nil
	s.mu.Unlock()
}

// Process-wide table used by Encode, Decode and Compress.
var (
	defaultMu     sync.Mutex
	defaultShared *Shared
)

// Initialize allocates the process-wide table. Calling it is optional: the
// first Encode, Decode or Compress allocates the table too.
func Initialize() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultShared == nil {
		defaultShared = NewShared(defaultSharedSize, defaultSharedAverage)
	}
}

// Shutdown releases the process-wide table. Symbols issued before Shutdown
// are invalid afterwards.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultShared == nil {
		return
	}
	st := defaultShared.Stats()
	logger.Debug("symtab: shutdown",
		"kb", float64(st.Allocated)/1024,
		"strings", st.Count,
		"average_length", st.AverageLength)
	defaultShared.Close()
	defaultShared = nil
}

// Default returns the process-wide table, allocating it on first use.
func Default() *Shared {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultShared == nil {
		defaultShared = NewShared(defaultSharedSize, defaultSharedAverage)
	}
	return defaultShared
}

// Encode interns str in the process-wide table.
func Encode(str string) Symbol { return Default().Intern(str) }

// Decode resolves sym against the process-wide table.
func Decode(sym Symbol) string { return Default().Resolve(sym) }

// Compress packs the process-wide table.
func Compress() int { return Default().Pack() }
