// Package partition implements the vertical-partition layer: one
// backend.Backend per attribute key, joined at query time into the
// disjoint sub-rectangles that make up a requested region,
// each carrying the merged bundle of whichever attributes cover it.
package partition
