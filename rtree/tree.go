package rtree

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

// Insert implements backend.Backend.
func (t *Tree) Insert(r rect.Rectangle, v any) error {
	if err := backend.Validate(r); err != nil {
		return err
	}

	hits := t.collectIntersecting(r)
	replacement := backend.Decompose(hits, r, v)
	for _, f := range replacement {
		t.insertAt(0, entry{mbr: f.Rect, frag: f, active: true})
	}
	t.activeCount += len(replacement) - len(hits)
	t.generation++
	return nil
}

// collectIntersecting tombstones every active leaf entry intersecting r
// and returns the fragments they held.
func (t *Tree) collectIntersecting(r rect.Rectangle) []backend.Fragment {
	var hits []backend.Fragment
	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			for i := range n.entries {
				e := &n.entries[i]
				if e.active && rect.Intersects(e.mbr, r) {
					hits = append(hits, e.frag)
					e.active = false
				}
			}
			return
		}
		for i := range n.entries {
			if rect.Intersects(n.entries[i].mbr, r) {
				walk(n.entries[i].child)
			}
		}
	}
	walk(t.root)
	return hits
}

// insertAt runs Guttman's algorithm at the given height: choose the
// subtree, append the entry, split on overflow (propagating the split
// upward, growing the root if necessary), then adjust ancestor MBRs.
func (t *Tree) insertAt(height int, e entry) {
	n := t.chooseSubtree(e.mbr, height)
	if e.child != nil {
		e.child.parent = n
	}
	n.entries = append(n.entries, e)

	if len(n.entries) > maxEntries {
		nn := n.split()
		if n.height == t.root.height {
			newRoot := &node{height: t.root.height + 1, entries: make([]entry, 0, maxEntries+1)}
			newRoot.entries = append(newRoot.entries,
				entry{mbr: recalcMBR(n), child: n},
				entry{mbr: recalcMBR(nn), child: nn},
			)
			n.parent, nn.parent = newRoot, newRoot
			t.root = newRoot
			return
		}
		t.insertAt(nn.height+1, entry{mbr: recalcMBR(nn), child: nn})
	}

	for n.height < t.root.height {
		idx := parentIdx(n)
		n.parent.entries[idx].mbr = recalcMBR(n)
		n = n.parent
	}
}

// parentIdx finds n's slot in its parent's entries. A miss means the
// tree's parent pointers have fallen out of sync with its entry slices,
// an internal invariant violation rather than a condition callers can
// recover from.
func parentIdx(n *node) int {
	p := n.parent
	for i := range p.entries {
		if p.entries[i].child == n {
			return i
		}
	}
	panic(errors.Wrap(backend.ErrCorruptState, "rtree: node missing from parent entries"))
}

// Query implements backend.Backend.
func (t *Tree) Query(q rect.Rectangle) iter.Seq2[rect.Rectangle, any] {
	startGen := t.generation
	root := t.root
	return func(yield func(rect.Rectangle, any) bool) {
		var walk func(n *node) bool
		walk = func(n *node) bool {
			if t.generation != startGen {
				panic("rtree: tree mutated during iteration")
			}
			if n.isLeaf() {
				for _, e := range n.entries {
					if t.generation != startGen {
						panic("rtree: tree mutated during iteration")
					}
					if e.active && rect.Intersects(e.mbr, q) {
						if !yield(e.mbr, e.frag.Value) {
							return false
						}
					}
				}
				return true
			}
			for _, e := range n.entries {
				if rect.Intersects(e.mbr, q) {
					if !walk(e.child) {
						return false
					}
				}
			}
			return true
		}
		walk(root)
	}
}

// Extent implements backend.Backend.
func (t *Tree) Extent() geom.Extent {
	var rects []rect.Rectangle
	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			for _, e := range n.entries {
				if e.active {
					rects = append(rects, e.mbr)
				}
			}
			return
		}
		for _, e := range n.entries {
			walk(e.child)
		}
	}
	walk(t.root)
	return geom.ExtentOfRects(rects)
}

// Len implements backend.Backend. It reports the active fragment
// count, not the (possibly larger) number of leaf slots still
// occupied by tombstones awaiting Rebuild.
func (t *Tree) Len() int {
	return t.activeCount
}

// Diagnostics reports structural health metrics useful for deciding
// whether a Rebuild is worth its cost.
type Diagnostics struct {
	Depth          int
	NodeCount      int
	SiblingOverlap float64
	DeadSpace      float64
}

// Diagnostics walks the tree computing its depth, node count, the
// summed pairwise overlap area between sibling entries, and the summed
// dead space (each internal node's MBR area minus its children's
// summed area).
func (t *Tree) Diagnostics() Diagnostics {
	var d Diagnostics
	d.Depth = t.root.height + 1

	var walk func(n *node)
	walk = func(n *node) {
		d.NodeCount++
		if n.isLeaf() {
			return
		}
		for i := 0; i < len(n.entries); i++ {
			for j := i + 1; j < len(n.entries); j++ {
				d.SiblingOverlap += overlapF(n.entries[i].mbr, n.entries[j].mbr)
			}
		}
		var childArea float64
		for _, e := range n.entries {
			childArea += areaF(e.mbr)
		}
		d.DeadSpace += areaF(recalcMBR(n)) - childArea
		for _, e := range n.entries {
			walk(e.child)
		}
	}
	walk(t.root)
	return d
}

// Rebuild discards tombstoned entries and the existing tree shape,
// then reinserts every active fragment fresh. Tombstoning keeps Insert
// O(height) instead of O(height·node size) for removal, at the cost of
// leaf slots accumulating dead entries over time; Rebuild is the
// maintenance hook that reclaims them.
func (t *Tree) Rebuild() {
	var frags []backend.Fragment
	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			for _, e := range n.entries {
				if e.active {
					frags = append(frags, e.frag)
				}
			}
			return
		}
		for _, e := range n.entries {
			walk(e.child)
		}
	}
	walk(t.root)

	t.root = &node{entries: make([]entry, 0, maxEntries+1), height: 0}
	for _, f := range frags {
		t.insertAt(0, entry{mbr: f.Rect, frag: f, active: true})
	}
	t.activeCount = len(frags)
	t.generation++
}
