package geom

import "github.com/jimisaacs/spandex/rect"

// Subtract returns up to four pairwise-disjoint rectangles whose union
// is exactly A\B (A minus B). The fragments are emitted as top strip,
// bottom strip, left strip, right strip, in that order; any strip with
// zero extent is simply omitted. When a and b do not intersect, the
// result is a alone.
//
// Every −1/+1 adjustment below only fires on the side of a strict
// inequality against the opposite rectangle's finite bound, so it can
// never under/overflow NegInf/PosInf: e.g. the top strip's by1-1 only
// runs when ay1 < by1, which (since ay1 ≥ NegInf) forces by1 > NegInf.
//
// Complexity: O(1).
func Subtract(a, b rect.Rectangle) []rect.Rectangle {
	if !rect.Intersects(a, b) {
		return []rect.Rectangle{a}
	}
	fragments := make([]rect.Rectangle, 0, 4)

	if a.Y1 < b.Y1 {
		// Top strip: the part of A above B's top edge.
		fragments = append(fragments, rect.MustNew(a.X1, a.Y1, a.X2, b.Y1-1))
	}
	if a.Y2 > b.Y2 {
		// Bottom strip: the part of A below B's bottom edge.
		fragments = append(fragments, rect.MustNew(a.X1, b.Y2+1, a.X2, a.Y2))
	}

	yMin, yMax := max(a.Y1, b.Y1), min(a.Y2, b.Y2)
	if yMin <= yMax {
		if a.X1 < b.X1 {
			// Left strip: the part of A left of B's left edge, within the
			// Y band the two rectangles share.
			fragments = append(fragments, rect.MustNew(a.X1, yMin, b.X1-1, yMax))
		}
		if a.X2 > b.X2 {
			// Right strip: the part of A right of B's right edge, within the
			// shared Y band.
			fragments = append(fragments, rect.MustNew(b.X2+1, yMin, a.X2, yMax))
		}
	}

	return fragments
}
