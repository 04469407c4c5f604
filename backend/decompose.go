package backend

import (
	"fmt"

	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

// Validate checks r's construction invariant for backends that accept
// rectangles built outside of rect.New (e.g. assembled by a caller from
// stored fields rather than freshly constructed).
func Validate(r rect.Rectangle) error {
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return fmt.Errorf("%w: %s", ErrInvalidRectangle, r)
	}
	return nil
}

// Decompose is the backend-agnostic half of insert(r, v): given the
// existing fragments that intersect r, it returns their clipped
// remainders plus (r, v) itself. The caller (a zorder.Store or
// rtree.Tree) is responsible for finding hits via its own index, for
// removing them, and for storing the result.
//
// hits is consumed as given; Decompose does not mutate it.
//
// When the index's prior state was the single ALL fragment, hits is
// exactly that one fragment (ALL intersects everything), so the general
// case already produces the documented override behavior — the ALL
// fragment's remainder, subtract(ALL, r), stored under its old value,
// plus (r, v) — with no separate code path required.
func Decompose(hits []Fragment, r rect.Rectangle, v any) []Fragment {
	out := make([]Fragment, 0, len(hits)+1)
	for _, f := range hits {
		for _, frag := range geom.Subtract(f.Rect, r) {
			out = append(out, Fragment{Rect: frag, Value: f.Value})
		}
	}
	out = append(out, Fragment{Rect: r, Value: v})
	return out
}
