// Package geom is the geometry kernel: rectangle subtraction (producing
// the disjoint fragments of A\B) and extent computation (minimum
// bounding rectangle plus infinite-edge flags) over a set of
// rectangles. Both backends in this module build their insert
// bookkeeping on Subtract, and the partition layer's Extent on
// ExtentOfRects.
package geom
