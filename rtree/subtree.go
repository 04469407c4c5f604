package rtree

import "github.com/jimisaacs/spandex/rect"

// chooseSubtree descends from the root to the best node at the given
// height to receive a new entry bounding r: at the level directly above
// the leaves it minimizes overlap with r, everywhere else it minimizes
// MBR enlargement, breaking ties by the smaller MBR enlargement and then
// by the smaller current MBR area.
func (t *Tree) chooseSubtree(r rect.Rectangle, height int) *node {
	n := t.root
	for !n.isLeaf() && n.height > height {
		pointsToLeaves := n.height == 1

		best := n.entries[0]
		bestCost := subtreeCost(best, r, pointsToLeaves)
		for _, e := range n.entries[1:] {
			cost := subtreeCost(e, r, pointsToLeaves)
			switch {
			case cost < bestCost:
				best, bestCost = e, cost
			case cost == bestCost && enlargement(e.mbr, r) < enlargement(best.mbr, r):
				best, bestCost = e, cost
			case cost == bestCost && enlargement(e.mbr, r) == enlargement(best.mbr, r) && areaF(e.mbr) < areaF(best.mbr):
				best, bestCost = e, cost
			}
		}
		n = best.child
	}
	return n
}

func subtreeCost(e entry, r rect.Rectangle, pointsToLeaves bool) float64 {
	if pointsToLeaves {
		return overlapF(e.mbr, r)
	}
	return enlargement(e.mbr, r)
}
