package backend

import (
	"iter"

	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

// Fragment pairs a disjoint rectangle with the value last written there.
// A well-formed backend's stored fragments are pairwise non-intersecting;
// that invariant is what makes Query a simple scan instead of a merge.
type Fragment struct {
	Rect  rect.Rectangle
	Value any
}

// Backend is the contract shared by the zorder and rtree stores. Both
// hold a disjoint partition of fragments and implement last-writer-wins
// insertion via Decompose; they differ only in how they index fragments
// for Query and how they choose which existing fragments intersect an
// incoming rectangle.
//
// Query ranges lazily over matching fragments in the generation the
// iterator was opened in: mutating the backend while an iterator is
// still live invalidates it (see Store/Tree doc comments for the exact
// fail-fast mechanism).
type Backend interface {
	// Insert decomposes the existing fragments that intersect r, keeping
	// their non-overlapping remainders, and stores (r, v) as the new
	// last writer over r. Returns ErrInvalidRectangle if r fails its
	// construction invariant.
	Insert(r rect.Rectangle, v any) error

	// Query yields every stored fragment that intersects q, in no
	// particular order. Passing rect.ALL (or calling QueryAll) yields
	// every stored fragment.
	Query(q rect.Rectangle) iter.Seq2[rect.Rectangle, any]

	// Extent reports the bounding geometry of all stored fragments.
	Extent() geom.Extent

	// Len reports the number of stored fragments.
	Len() int
}

// QueryAll is query() with no bounds: it is defined to be exactly
// Query(rect.ALL), since rect.ALL intersects every fragment a backend
// could ever store.
func QueryAll(b Backend) iter.Seq2[rect.Rectangle, any] {
	return b.Query(rect.ALL)
}
