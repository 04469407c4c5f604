package rtree

import "github.com/jimisaacs/spandex/rect"

// areaF is r.Area() as a float64: the split and subtree heuristics run
// in floating point so margin/overlap sums never risk the integer
// overflow rect.Rectangle.Area() otherwise has to saturate against.
func areaF(r rect.Rectangle) float64 {
	return float64(r.Area())
}

// marginF is the half-perimeter of r, the quantity the R* split axis
// choice sums across candidate distributions.
func marginF(r rect.Rectangle) float64 {
	return float64(r.Width()) + float64(r.Height())
}

// mbr returns the smallest rectangle containing both a and b.
func mbr(a, b rect.Rectangle) rect.Rectangle {
	return rect.Rectangle{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}

// overlapF is the area of a∩b, or 0 when they don't intersect.
func overlapF(a, b rect.Rectangle) float64 {
	if !rect.Intersects(a, b) {
		return 0
	}
	return areaF(rect.Rectangle{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	})
}

// enlargement is how much area existing's MBR must grow to also cover r.
func enlargement(existing, r rect.Rectangle) float64 {
	return areaF(mbr(existing, r)) - areaF(existing)
}

func mbrOfEntries(entries []entry) rect.Rectangle {
	m := entries[0].mbr
	for _, e := range entries[1:] {
		m = mbr(m, e.mbr)
	}
	return m
}

func recalcMBR(n *node) rect.Rectangle {
	return mbrOfEntries(n.entries)
}
