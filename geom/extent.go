package geom

import "github.com/jimisaacs/spandex/rect"

// Extent is the minimum bounding rectangle of the finite portions of a
// set of rectangles, plus per-edge flags marking sides that extend to
// infinity, plus an Empty flag for the no-rectangles case.
type Extent struct {
	MBR   rect.Rectangle
	Edges rect.EdgeFlags
	Empty bool
}

// ExtentOfRects reduces over rects, tracking the bounding box of their
// finite portions and which sides saw an infinite edge. Missing finite
// observations on an axis default to 0.
//
// For an empty input, it returns {MBR: rect.ZERO, Edges: all-true, Empty:
// true}, so callers can distinguish "nothing stored" from "something
// with infinite reach".
//
// Complexity: O(len(rects)).
func ExtentOfRects(rects []rect.Rectangle) Extent {
	if len(rects) == 0 {
		return Extent{MBR: rect.ZERO, Edges: rect.AllTrue, Empty: true}
	}

	var (
		edges                  rect.EdgeFlags
		minX, minY, maxX, maxY rect.Coord
		sawMinX, sawMinY       bool
		sawMaxX, sawMaxY       bool
	)

	for _, r := range rects {
		if r.X1 == rect.NegInf {
			edges.XMin = true
		} else if !sawMinX || r.X1 < minX {
			minX, sawMinX = r.X1, true
		}
		if r.Y1 == rect.NegInf {
			edges.YMin = true
		} else if !sawMinY || r.Y1 < minY {
			minY, sawMinY = r.Y1, true
		}
		if r.X2 == rect.PosInf {
			edges.XMax = true
		} else if !sawMaxX || r.X2 > maxX {
			maxX, sawMaxX = r.X2, true
		}
		if r.Y2 == rect.PosInf {
			edges.YMax = true
		} else if !sawMaxY || r.Y2 > maxY {
			maxY, sawMaxY = r.Y2, true
		}
	}

	// Finite observations default to 0 when every rectangle was infinite
	// on that edge.
	return Extent{
		MBR:   rect.Rectangle{X1: minX, Y1: minY, X2: maxX, Y2: maxY},
		Edges: edges,
		Empty: false,
	}
}
