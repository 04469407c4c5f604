// Package rect implements the rectangle algebra underlying spandex: a
// closed-interval, integer-coordinate rectangle type with canonical
// sentinels for "everything" (ALL) and the origin point (ZERO), and the comparison
// predicates (Equals, Contains, Intersects) every other package in this
// module builds on.
//
// Coordinates are integers drawn from Z ∪ {−∞, +∞}; the infinities are
// represented by the distinguished Coord values NegInf and PosInf so
// that ordinary integer comparison (<, >, ==) already implements the
// correct semantics at the edges of the coordinate space, with no
// special-casing required by callers.
package rect
