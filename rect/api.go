package rect

import (
	"fmt"
	"math"
)

// New constructs a Rectangle, validating x1 ≤ x2 and y1 ≤ y2.
// Degenerate rectangles (a single row, column, or point) are valid;
// inverted ones are rejected with ErrInvalidRectangle.
//
// Complexity: O(1).
func New(x1, y1, x2, y2 Coord) (Rectangle, error) {
	if x1 > x2 || y1 > y2 {
		return Rectangle{}, fmt.Errorf("%w: (%d,%d,%d,%d)", ErrInvalidRectangle, x1, y1, x2, y2)
	}

	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// MustNew is New, panicking on an invalid rectangle. Intended for
// constants and tests, not for validating caller-supplied input.
func MustNew(x1, y1, x2, y2 Coord) Rectangle {
	r, err := New(x1, y1, x2, y2)
	if err != nil {
		panic(err)
	}

	return r
}

// Equals reports whether a and b cover exactly the same points.
// Complexity: O(1).
func Equals(a, b Rectangle) bool {
	return a == b
}

// Contains reports whether a fully covers b.
// Complexity: O(1).
func Contains(a, b Rectangle) bool {
	return a.X1 <= b.X1 && a.Y1 <= b.Y1 && a.X2 >= b.X2 && a.Y2 >= b.Y2
}

// Intersects reports whether a and b share at least one lattice point.
// Complexity: O(1).
func Intersects(a, b Rectangle) bool {
	return !(a.X2 < b.X1 || b.X2 < a.X1 || a.Y2 < b.Y1 || b.Y2 < a.Y1)
}

// IsAll reports whether r is the reserved "everything" sentinel.
func IsAll(r Rectangle) bool { return r == ALL }

// IsZero reports whether r is the reserved origin-point sentinel.
func IsZero(r Rectangle) bool { return r == ZERO }

// Width returns the number of lattice columns spanned by r, or PosInf's
// underlying magnitude if either X edge is infinite.
func (r Rectangle) Width() int64 {
	if r.X1 == NegInf || r.X2 == PosInf {
		return math.MaxInt64
	}

	return int64(r.X2-r.X1) + 1
}

// Height returns the number of lattice rows spanned by r, or the
// infinite sentinel magnitude if either Y edge is infinite.
func (r Rectangle) Height() int64 {
	if r.Y1 == NegInf || r.Y2 == PosInf {
		return math.MaxInt64
	}

	return int64(r.Y2-r.Y1) + 1
}

// Area returns Width()×Height(), saturating at math.MaxInt64 on overflow
// or on any infinite edge. Used by the R-tree split heuristics, which
// only ever compare areas relatively.
func (r Rectangle) Area() int64 {
	w, h := r.Width(), r.Height()
	if w == math.MaxInt64 || h == math.MaxInt64 {
		return math.MaxInt64
	}
	area := w * h
	if w != 0 && area/w != h {
		return math.MaxInt64 // overflow
	}

	return area
}

// String renders r as "(x1,y1,x2,y2)" with ±∞ spelled out, for debug
// output and test failure messages.
func (r Rectangle) String() string {
	return fmt.Sprintf("(%s,%s,%s,%s)", coordString(r.X1), coordString(r.Y1), coordString(r.X2), coordString(r.Y2))
}

func coordString(c Coord) string {
	switch c {
	case NegInf:
		return "-inf"
	case PosInf:
		return "+inf"
	default:
		return fmt.Sprintf("%d", int64(c))
	}
}
