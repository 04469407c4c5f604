package rect_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimisaacs/spandex/rect"
)

// TestNew_Valid checks that construct accepts ordinary, degenerate, and
// infinite-edge rectangles, and canonicalizes ZERO/ALL.
func TestNew_Valid(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 rect.Coord
		want           rect.Rectangle
	}{
		{"ordinary", 0, 0, 2, 2, rect.Rectangle{X1: 0, Y1: 0, X2: 2, Y2: 2}},
		{"single point", 5, 5, 5, 5, rect.Rectangle{X1: 5, Y1: 5, X2: 5, Y2: 5}},
		{"single row", 0, 3, 4, 3, rect.Rectangle{X1: 0, Y1: 3, X2: 4, Y2: 3}},
		{"zero sentinel", 0, 0, 0, 0, rect.ZERO},
		{"all sentinel", rect.NegInf, rect.NegInf, rect.PosInf, rect.PosInf, rect.ALL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rect.New(tc.x1, tc.y1, tc.x2, tc.y2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, rect.Equals(tc.want, got))
		})
	}
}

// TestNew_Invalid checks that inverted rectangles are rejected.
func TestNew_Invalid(t *testing.T) {
	_, err := rect.New(2, 0, 0, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rect.ErrInvalidRectangle))

	_, err = rect.New(0, 2, 2, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rect.ErrInvalidRectangle))
}

// TestCanonicalization pins that New(0,0,0,0) and
// New(-inf,-inf,+inf,+inf) return the reserved ZERO and ALL values.
func TestCanonicalization(t *testing.T) {
	z, err := rect.New(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, rect.ZERO, z)

	a, err := rect.New(rect.NegInf, rect.NegInf, rect.PosInf, rect.PosInf)
	require.NoError(t, err)
	assert.Equal(t, rect.ALL, a)

	assert.True(t, rect.IsZero(z))
	assert.True(t, rect.IsAll(a))
}

func TestContains(t *testing.T) {
	outer := rect.MustNew(0, 0, 10, 10)
	inner := rect.MustNew(2, 2, 5, 5)
	disjoint := rect.MustNew(20, 20, 30, 30)

	assert.True(t, rect.Contains(outer, inner))
	assert.True(t, rect.Contains(outer, outer))
	assert.False(t, rect.Contains(inner, outer))
	assert.False(t, rect.Contains(outer, disjoint))
	assert.True(t, rect.Contains(rect.ALL, outer))
	assert.False(t, rect.Contains(outer, rect.ALL))
}

func TestIntersects(t *testing.T) {
	a := rect.MustNew(0, 0, 4, 4)
	touching := rect.MustNew(5, 0, 9, 4)
	overlapping := rect.MustNew(3, 3, 8, 8)

	assert.False(t, rect.Intersects(a, touching), "touching ranges must not overlap")
	assert.True(t, rect.Intersects(a, overlapping))
	assert.True(t, rect.Intersects(a, a))
	assert.True(t, rect.Intersects(rect.ALL, a))
}

func TestWidthHeightArea(t *testing.T) {
	r := rect.MustNew(0, 0, 9, 4)
	assert.Equal(t, int64(10), r.Width())
	assert.Equal(t, int64(5), r.Height())
	assert.Equal(t, int64(50), r.Area())

	point := rect.MustNew(3, 3, 3, 3)
	assert.Equal(t, int64(1), point.Width())
	assert.Equal(t, int64(1), point.Area())

	assert.Equal(t, int64(1<<63-1), rect.ALL.Width())
}
