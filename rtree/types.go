package rtree

import (
	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/rect"
)

// minEntries and maxEntries bound the fan-out of every node but the
// root. 4 and 10 sit at the 40% minimum fill ratio the R-tree and R*
// literature both recommend.
const (
	minEntries = 4
	maxEntries = 10
)

// entry is either an internal entry (child non-nil, pointing one level
// down) or a leaf entry (frag populated, active reporting whether it
// has been tombstoned by a later overwrite).
type entry struct {
	mbr    rect.Rectangle
	child  *node
	frag   backend.Fragment
	active bool
}

// node is one R-tree node. height is the number of edges between it
// and a leaf; it never changes once assigned, even as splits grow the
// tree upward around it.
type node struct {
	parent  *node
	entries []entry
	height  int
}

func (n *node) isLeaf() bool { return n.height == 0 }

// Tree is a backend.Backend backed by an R*-tree of fragments.
// generation increments on every Insert; Query and the rest of the
// iteration surface follow the same fail-fast convention as
// zorder.Store: observing a generation change mid-scan panics rather
// than returning a result built from a half-mutated tree.
type Tree struct {
	root        *node
	generation  uint64
	activeCount int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: &node{entries: make([]entry, 0, maxEntries+1), height: 0}}
}

var _ backend.Backend = (*Tree)(nil)
