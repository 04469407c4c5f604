package spandex_test

import (
	"fmt"

	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/rect"
)

// adversarialInsert is one (rectangle, value) step of a fragmentation
// stress pattern.
type adversarialInsert struct {
	r rect.Rectangle
	v any
}

// concentricPattern inserts n nested rectangles, each one cell
// narrower than the last on every side, inserted outside-in.
func concentricPattern(n int) []adversarialInsert {
	side := rect.Coord(2*n - 1)
	ins := make([]adversarialInsert, n)
	for i := 0; i < n; i++ {
		c := rect.Coord(i)
		ins[i] = adversarialInsert{rect.MustNew(c, c, side-c, side-c), fmt.Sprintf("r%d", i)}
	}
	return ins
}

// diagonalPattern inserts n overlapping 10x10 squares sliding one cell
// at a time along the main diagonal, so each insert overwrites all of
// the previous square except a one-cell-wide L along its top and left
// edges.
func diagonalPattern(n int) []adversarialInsert {
	ins := make([]adversarialInsert, n)
	for i := 0; i < n; i++ {
		c := rect.Coord(i)
		ins[i] = adversarialInsert{rect.MustNew(c, c, c+9, c+9), fmt.Sprintf("d%d", i)}
	}
	return ins
}

// checkerboardPattern inserts n squares on a 10-column grid, one row
// of 4x4 cells at a time with no gap between rows; within a row each
// square is one lattice column wider than its spacing, so it overlaps
// a single shared column with its right-hand neighbor. Values alternate
// "black"/"white" by row+col parity, giving it checkerboard coloring
// even though the overlap chain itself runs row by row.
func checkerboardPattern(n int) []adversarialInsert {
	const cols = 10
	ins := make([]adversarialInsert, n)
	for i := 0; i < n; i++ {
		row, col := rect.Coord(i/cols), rect.Coord(i%cols)
		x, y := col*4, row*4
		color := "black"
		if (row+col)%2 == 1 {
			color = "white"
		}
		ins[i] = adversarialInsert{rect.MustNew(x, y, x+4, y+3), fmt.Sprintf("%s%d", color, i)}
	}
	return ins
}

// applyPattern feeds every insert in ins into b in order, stopping at
// the first error.
func applyPattern(b backend.Backend, ins []adversarialInsert) error {
	for _, in := range ins {
		if err := b.Insert(in.r, in.v); err != nil {
			return err
		}
	}
	return nil
}
