package partition

import (
	"iter"
	"reflect"
	"sort"

	"github.com/jimisaacs/spandex/rect"
)

// joinFragment is one attribute's contribution to the overlay: the
// portion of its store's fragment that falls within the query window.
type joinFragment struct {
	key   string
	rect  rect.Rectangle
	value any
}

// cell is one grid square of the coordinate-wise subdivision, before
// (and, for row, after) run-length merging.
type cell struct {
	rect   rect.Rectangle
	bundle map[string]any
}

// Query joins every attribute's store over q, returning disjoint
// sub-rectangles covering q's overlap with the union of all
// stored fragments, each paired with the bundle of attribute values
// that cover it. Sub-rectangles where no attribute has ever been
// written are omitted entirely, matching a bundle-less "no value here"
// reading, rather than surfacing with an empty bundle.
//
// The join works by coordinate-wise subdivision: every fragment edge
// that falls inside q becomes a candidate breakpoint on its axis, the
// breakpoints cut q into a grid, and each grid cell's bundle is the
// union of the attributes whose fragment contains it. Adjacent cells
// that end up with an identical bundle are then merged, first along
// rows and then along columns, to keep the output reasonably minimal
// rather than one rectangle per grid cell.
func (p *Partition) Query(q rect.Rectangle) iter.Seq2[rect.Rectangle, map[string]any] {
	return func(yield func(rect.Rectangle, map[string]any) bool) {
		var frags []joinFragment
		for key, s := range p.stores {
			for r, v := range s.Query(q) {
				frags = append(frags, joinFragment{key: key, rect: clip(r, q), value: v})
			}
		}
		if len(frags) == 0 {
			return
		}

		xs := axisBreakpoints(frags, func(f joinFragment) (rect.Coord, rect.Coord) { return f.rect.X1, f.rect.X2 }, q.X1, q.X2)
		ys := axisBreakpoints(frags, func(f joinFragment) (rect.Coord, rect.Coord) { return f.rect.Y1, f.rect.Y2 }, q.Y1, q.Y2)

		rows := make([][]cell, 0, len(ys))
		for _, yr := range ys {
			var row []cell
			for _, xr := range xs {
				c := rect.Rectangle{X1: xr[0], Y1: yr[0], X2: xr[1], Y2: yr[1]}
				bundle := make(map[string]any)
				for _, f := range frags {
					if rect.Contains(f.rect, c) {
						bundle[f.key] = f.value
					}
				}
				if len(bundle) > 0 {
					row = append(row, cell{rect: c, bundle: bundle})
				}
			}
			rows = append(rows, mergeRowRuns(row))
		}

		for _, merged := range mergeColumnRuns(rows) {
			if !yield(merged.rect, merged.bundle) {
				return
			}
		}
	}
}

func clip(a, b rect.Rectangle) rect.Rectangle {
	return rect.Rectangle{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
}

// axisBreakpoints returns the [lo,hi] sub-ranges a single axis is cut
// into by every fragment's edges on that axis, bounded by [qLo,qHi].
func axisBreakpoints(frags []joinFragment, edges func(joinFragment) (rect.Coord, rect.Coord), qLo, qHi rect.Coord) [][2]rect.Coord {
	set := map[rect.Coord]bool{qLo: true}
	for _, f := range frags {
		lo, hi := edges(f)
		set[lo] = true
		if hi != rect.PosInf {
			set[hi+1] = true
		}
	}
	if qHi != rect.PosInf {
		set[qHi+1] = true
	}

	coords := make([]rect.Coord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i] < coords[j] })

	ranges := make([][2]rect.Coord, 0, len(coords))
	for i, lo := range coords {
		hi := qHi
		if i+1 < len(coords) {
			hi = coords[i+1] - 1
		}
		if lo > hi {
			continue
		}
		ranges = append(ranges, [2]rect.Coord{lo, hi})
	}
	return ranges
}

// mergeRowRuns merges consecutive cells sharing a Y-range and an
// identical bundle into one wider rectangle. cells must already be in
// increasing X order for a fixed Y-range, which is how Query builds
// each row.
func mergeRowRuns(cells []cell) []cell {
	if len(cells) == 0 {
		return nil
	}
	merged := make([]cell, 0, len(cells))
	cur := cells[0]
	for _, c := range cells[1:] {
		if c.rect.Y1 == cur.rect.Y1 && c.rect.Y2 == cur.rect.Y2 &&
			c.rect.X1 == cur.rect.X2+1 && reflect.DeepEqual(c.bundle, cur.bundle) {
			cur.rect.X2 = c.rect.X2
			continue
		}
		merged = append(merged, cur)
		cur = c
	}
	return append(merged, cur)
}

// mergeColumnRuns merges row-merged cells vertically: a cell continues
// a run from the row above it when they share the same X-range,
// directly adjoin in Y, and carry an identical bundle.
func mergeColumnRuns(rows [][]cell) []cell {
	var result []cell
	type key struct{ x1, x2 rect.Coord }
	pending := make(map[key]cell)

	for _, row := range rows {
		next := make(map[key]cell, len(row))
		seen := make(map[key]bool, len(row))
		for _, c := range row {
			k := key{c.rect.X1, c.rect.X2}
			seen[k] = true
			if p, ok := pending[k]; ok && p.rect.Y2+1 == c.rect.Y1 && reflect.DeepEqual(p.bundle, c.bundle) {
				p.rect.Y2 = c.rect.Y2
				next[k] = p
				continue
			}
			if p, ok := pending[k]; ok {
				result = append(result, p)
			}
			next[k] = c
		}
		for k, c := range pending {
			if !seen[k] {
				result = append(result, c)
			}
		}
		pending = next
	}
	for _, c := range pending {
		result = append(result, c)
	}
	return result
}
