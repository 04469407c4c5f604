package rect

import "math"

// Coord is a single axis coordinate. The two extreme int64 values are
// reserved as the −∞ and +∞ sentinels; every other value is an ordinary
// finite lattice coordinate.
type Coord int64

const (
	// NegInf is the sentinel standing for negative infinity, the lower
	// (X1 or Y1) bound of a side that is unbounded. New does not check
	// which bound it appears in.
	NegInf Coord = math.MinInt64
	// PosInf is the sentinel standing for positive infinity, the upper
	// (X2 or Y2) bound of a side that is unbounded. New does not check
	// which bound it appears in.
	PosInf Coord = math.MaxInt64
)

// Finite reports whether c is neither NegInf nor PosInf.
func (c Coord) Finite() bool { return c != NegInf && c != PosInf }

// Rectangle is a closed axis-aligned interval [X1,X2] × [Y1,Y2]. The zero
// value is not a valid Rectangle on its own (use ZERO, or New).
//
// Rectangle is comparable: Go's built-in == already gives O(1),
// branch-free equality for the ZERO/ALL sentinels, so no separate
// canonicalization step is needed for a value type. See DESIGN.md for
// this Open Question.
type Rectangle struct {
	X1, Y1, X2, Y2 Coord
}

// EdgeFlags marks, per side, whether that side extends to infinity.
type EdgeFlags struct {
	XMin, YMin, XMax, YMax bool
}

// Or returns the componentwise logical OR of e and o, used when merging
// extents across fragments or backends.
func (e EdgeFlags) Or(o EdgeFlags) EdgeFlags {
	return EdgeFlags{
		XMin: e.XMin || o.XMin,
		YMin: e.YMin || o.YMin,
		XMax: e.XMax || o.XMax,
		YMax: e.YMax || o.YMax,
	}
}

// AllTrue is the EdgeFlags value with every side set, used for the empty
// extent: empty is true and every edge flag is true.
var AllTrue = EdgeFlags{true, true, true, true}

// ZERO is the reserved degenerate rectangle covering exactly the origin.
var ZERO = Rectangle{0, 0, 0, 0}

// ALL is the reserved rectangle covering the entire coordinate plane.
var ALL = Rectangle{NegInf, NegInf, PosInf, PosInf}
