package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

func TestExtentOfRects_Empty(t *testing.T) {
	e := geom.ExtentOfRects(nil)
	assert.True(t, e.Empty)
	assert.Equal(t, rect.ZERO, e.MBR)
	assert.Equal(t, rect.AllTrue, e.Edges)
}

func TestExtentOfRects_Finite(t *testing.T) {
	e := geom.ExtentOfRects([]rect.Rectangle{
		rect.MustNew(0, 0, 2, 2),
		rect.MustNew(-3, 5, 4, 10),
	})
	assert.False(t, e.Empty)
	assert.Equal(t, rect.MustNew(-3, 0, 4, 10), e.MBR)
	assert.Equal(t, rect.EdgeFlags{}, e.Edges)
}

func TestExtentOfRects_InfiniteEdges(t *testing.T) {
	e := geom.ExtentOfRects([]rect.Rectangle{
		rect.MustNew(rect.NegInf, 1, 0, 1),
		rect.MustNew(2, 1, rect.PosInf, 1),
		rect.MustNew(1, rect.NegInf, 1, rect.PosInf),
	})
	assert.False(t, e.Empty)
	assert.True(t, e.Edges.XMin)
	assert.True(t, e.Edges.XMax)
	assert.True(t, e.Edges.YMin)
	assert.True(t, e.Edges.YMax)
	// Every edge has at least one finite observation across the three
	// fragments: the smallest finite lower bound and the largest finite
	// upper bound are both 1 on each axis, so the MBR is (1,1,1,1); the
	// infinite-edge flags record the reach.
	assert.Equal(t, rect.MustNew(1, 1, 1, 1), e.MBR)
}
