package search

import (
	"github.com/nimblechess/nimbus/pkg/board/position"
)

// state is the tri-state lifecycle of a transposition table entry: notSet means the
// bucket is empty (or holds a different position, disambiguated by full equality,
// because the 16-bit Zobrist hash collides often), finding means a search for this exact
// position is already in progress on the call stack (guards against cycles), found means
// a usable score is stored.
type state uint8

const (
	notSet state = iota
	finding
	found
)

// numBuckets is a power of two, matching the original engine's fixed table size.
const numBuckets = 16384

// entry is one transposition table slot.
type entry struct {
	pos   *position.Position
	st    state
	score int
}

// table is a search-local transposition table, created fresh for every iterative
// deepening iteration and discarded at the end of it -- never persisted across calls to
// Think, unlike a production engine's long-lived, concurrently-shared table.
type table struct {
	buckets []entry
}

func newTable() *table {
	return &table{buckets: make([]entry, numBuckets)}
}

func (t *table) index(hash position.ZobristHash) int {
	return int(hash) % numBuckets
}

// lookup returns the entry for pos if the bucket at pos's hash holds an equal position,
// and whether it was found at all (as opposed to belonging to a different position that
// happens to share the hash).
func (t *table) lookup(pos *position.Position) (*entry, bool) {
	e := &t.buckets[t.index(pos.Hash())]
	return e, e.st != notSet && e.pos != nil && e.pos.Equals(pos)
}

// markFinding claims the bucket for pos, signaling to sibling recursive calls that a
// search for this exact position is already underway.
func (t *table) markFinding(pos *position.Position) {
	t.buckets[t.index(pos.Hash())] = entry{pos: pos.Clone(), st: finding}
}

// store records the resolved score for pos. A score equal to alphaBeforeUpdate is only a
// fail-low upper bound, not an exact or usable value -- the entry is marked notSet so a
// later call recomputes it instead of trusting a stale bound.
func (t *table) store(pos *position.Position, score, alphaBeforeUpdate int) {
	// The bucket may have been overwritten by another branch of the recursion while this
	// entry was being resolved (a fresh markFinding for an unrelated position hashing to
	// the same bucket) -- re-index rather than holding a pointer across the recursive
	// search call.
	e := &t.buckets[t.index(pos.Hash())]

	st := found
	if score == alphaBeforeUpdate {
		st = notSet
	}
	*e = entry{pos: pos.Clone(), st: st, score: score}
}
