package zorder

import (
	"iter"
	"sort"

	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

type entry struct {
	key uint64
	backend.Fragment
}

// Store is a backend.Backend holding its fragments sorted by Morton
// key. generation increments on every Insert; Query snapshots it and
// panics if it observes a mismatch mid-iteration, so a caller that
// mutates a Store while ranging over one of its Query results finds
// out immediately rather than reading a partially-rewritten partition.
type Store struct {
	fragments  []entry
	generation uint64
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

var _ backend.Backend = (*Store)(nil)

// Insert implements backend.Backend.
func (s *Store) Insert(r rect.Rectangle, v any) error {
	if err := backend.Validate(r); err != nil {
		return err
	}

	var hits []backend.Fragment
	kept := make([]entry, 0, len(s.fragments))
	for _, e := range s.fragments {
		if rect.Intersects(e.Rect, r) {
			hits = append(hits, e.Fragment)
		} else {
			kept = append(kept, e)
		}
	}
	s.fragments = kept

	for _, f := range backend.Decompose(hits, r, v) {
		s.insertSorted(f)
	}
	s.generation++
	return nil
}

// insertSorted splices f into s.fragments at the position its Morton
// key belongs, preserving sorted order.
func (s *Store) insertSorted(f backend.Fragment) {
	e := entry{key: mortonKey(f.Rect), Fragment: f}
	i := sort.Search(len(s.fragments), func(i int) bool { return s.fragments[i].key >= e.key })
	s.fragments = append(s.fragments, entry{})
	copy(s.fragments[i+1:], s.fragments[i:])
	s.fragments[i] = e
}

// Query implements backend.Backend. The returned iterator scans the
// fragments present at the moment Query was called.
func (s *Store) Query(q rect.Rectangle) iter.Seq2[rect.Rectangle, any] {
	snapshot := s.fragments
	startGen := s.generation
	return func(yield func(rect.Rectangle, any) bool) {
		for i := range snapshot {
			if s.generation != startGen {
				panic("zorder: store mutated during iteration")
			}
			e := snapshot[i]
			if rect.Intersects(e.Rect, q) {
				if !yield(e.Rect, e.Value) {
					return
				}
			}
		}
	}
}

// Extent implements backend.Backend.
func (s *Store) Extent() geom.Extent {
	rects := make([]rect.Rectangle, len(s.fragments))
	for i, e := range s.fragments {
		rects[i] = e.Rect
	}
	return geom.ExtentOfRects(rects)
}

// Len implements backend.Backend.
func (s *Store) Len() int {
	return len(s.fragments)
}

// Rebuild recomputes every fragment's Morton key and re-sorts. Insert
// already keeps the store sorted incrementally; Rebuild is a cheap
// maintenance hook for restoring canonical order, e.g. after a bulk
// load that appended fragments out of order.
func (s *Store) Rebuild() {
	for i := range s.fragments {
		s.fragments[i].key = mortonKey(s.fragments[i].Rect)
	}
	sort.Slice(s.fragments, func(i, j int) bool { return s.fragments[i].key < s.fragments[j].key })
	s.generation++
}
