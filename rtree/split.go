package rtree

import "sort"

// split partitions n's M+1 entries (n has just overflowed) into two
// groups using the R* heuristic: pick the axis whose candidate
// distributions have the smaller summed margin, then within that axis
// pick the distribution with the smallest overlap (ties broken by
// smaller summed area). n keeps the first group; the returned node
// holds the second.
func (n *node) split() *node {
	sortedX := sortedByAxis(n.entries, true)
	sortedY := sortedByAxis(n.entries, false)

	var sorted []entry
	if axisMarginSum(sortedX) <= axisMarginSum(sortedY) {
		sorted = sortedX
	} else {
		sorted = sortedY
	}

	k := bestSplitIndex(sorted)
	nn := &node{parent: n.parent, height: n.height, entries: make([]entry, 0, maxEntries+1)}

	n.entries = append([]entry(nil), sorted[:minEntries-1+k]...)
	nn.entries = append(nn.entries, sorted[minEntries-1+k:]...)
	for i := range nn.entries {
		if nn.entries[i].child != nil {
			nn.entries[i].child.parent = nn
		}
	}
	return nn
}

func sortedByAxis(entries []entry, byX bool) []entry {
	sorted := append([]entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].mbr, sorted[j].mbr
		if byX {
			if a.X1 != b.X1 {
				return a.X1 < b.X1
			}
			return a.X2 < b.X2
		}
		if a.Y1 != b.Y1 {
			return a.Y1 < b.Y1
		}
		return a.Y2 < b.Y2
	})
	return sorted
}

// splitDistributions is the number of ways M+1 entries can be divided
// into two non-degenerate groups respecting minEntries.
func splitDistributions() int {
	return maxEntries - 2*minEntries + 2
}

func axisMarginSum(sorted []entry) float64 {
	var sum float64
	for k := 1; k <= splitDistributions(); k++ {
		g1, g2 := sorted[:minEntries-1+k], sorted[minEntries-1+k:]
		sum += marginF(mbrOfEntries(g1)) + marginF(mbrOfEntries(g2))
	}
	return sum
}

func bestSplitIndex(sorted []entry) int {
	bestK := 1
	bestOverlap := -1.0
	bestArea := 0.0
	for k := 1; k <= splitDistributions(); k++ {
		g1, g2 := sorted[:minEntries-1+k], sorted[minEntries-1+k:]
		m1, m2 := mbrOfEntries(g1), mbrOfEntries(g2)
		ov := overlapF(m1, m2)
		ar := areaF(m1) + areaF(m2)
		if bestOverlap < 0 || ov < bestOverlap || (ov == bestOverlap && ar < bestArea) {
			bestK, bestOverlap, bestArea = k, ov, ar
		}
	}
	return bestK
}
