package engine

import (
	"github.com/negamaxchess/chesscore/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry represents an entry in the transposition table.
type TTEntry struct {
	Score    int
	Depth    int
	Flag     TTFlag
	BestMove board.Move
}

// DefaultTTCapacity is the entry count at which Store clears the whole
// table before inserting. The table is a search hint cache, not
// correctness critical, so a global flush on overflow is sufficient.
const DefaultTTCapacity = 1000000

// TranspositionTable is a capacity-bounded map keyed by the exact
// 64-bit Zobrist hash. There is no per-entry replacement policy and no
// collision verification beyond the key itself.
type TranspositionTable struct {
	entries  map[uint64]TTEntry
	capacity int
}

// NewTranspositionTable creates a table at DefaultTTCapacity.
func NewTranspositionTable() *TranspositionTable {
	return NewTranspositionTableWithCapacity(DefaultTTCapacity)
}

// NewTranspositionTableWithCapacity creates a table bounded at capacity entries.
func NewTranspositionTableWithCapacity(capacity int) *TranspositionTable {
	return &TranspositionTable{
		entries:  make(map[uint64]TTEntry),
		capacity: capacity,
	}
}

// Probe looks up a position by its exact Zobrist key.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	entry, ok := tt.entries[hash]
	return entry, ok
}

// Store saves a search result, clearing the whole table first if it is
// already at capacity.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move) {
	if len(tt.entries) >= tt.capacity {
		tt.Clear()
	}
	tt.entries[hash] = TTEntry{
		Score:    score,
		Depth:    depth,
		Flag:     flag,
		BestMove: bestMove,
	}
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[uint64]TTEntry)
}

// Len returns the number of stored entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}
