package seamcarve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarver_CarveShrinksToTarget(t *testing.T) {
	assert := assert.New(t)

	c := NewCarver(randomGrid(t, 12, 9, 3))
	err := c.Carve(7, 5)
	assert.NoError(err)

	assert.Equal(7, c.Grid.Width())
	assert.Equal(5, c.Grid.Height())
	assert.Equal(5, c.Stats.VerticalSeams)
	assert.Equal(4, c.Stats.HorizontalSeams)
	assert.Greater(c.Stats.Evaluations, 0)
}

func TestCarver_CarveSingleAxis(t *testing.T) {
	assert := assert.New(t)

	c := NewCarver(randomGrid(t, 10, 6, 4))
	assert.NoError(c.Carve(4, 6))
	assert.Equal(4, c.Grid.Width())
	assert.Equal(6, c.Grid.Height())
	assert.Equal(6, c.Stats.VerticalSeams)
	assert.Equal(0, c.Stats.HorizontalSeams)

	c = NewCarver(randomGrid(t, 10, 6, 5))
	assert.NoError(c.Carve(10, 1))
	assert.Equal(10, c.Grid.Width())
	assert.Equal(1, c.Grid.Height())
	assert.Equal(0, c.Stats.VerticalSeams)
	assert.Equal(5, c.Stats.HorizontalSeams)
}

func TestCarver_CarveToCurrentSizeIsNoop(t *testing.T) {
	assert := assert.New(t)

	g := randomGrid(t, 5, 5, 6)
	before := reds(g)
	c := NewCarver(g)

	assert.NoError(c.Carve(5, 5))
	assert.Equal(Stats{}, c.Stats)
	assert.Equal(before, reds(c.Grid))
}

func TestCarver_CarveRejectsInvalidTargets(t *testing.T) {
	for _, target := range [][2]int{{0, 3}, {3, 0}, {6, 3}, {3, 6}, {-2, 2}} {
		g := randomGrid(t, 5, 5, 8)
		before := reds(g)
		c := NewCarver(g)

		err := c.Carve(target[0], target[1])
		assert.ErrorIs(t, err, ErrInvalidTarget, "target %v", target)
		assert.Equal(t, Stats{}, c.Stats)
		assert.Equal(t, before, reds(c.Grid))
	}
}

func TestCarver_CarveInterleavesAxes(t *testing.T) {
	var order []Orientation

	c := NewCarver(randomGrid(t, 5, 5, 9))
	c.OnSeam = func(s Seam) {
		order = append(order, s.Orientation())
	}
	assert.NoError(t, c.Carve(3, 2))
	assert.Equal(t, []Orientation{Vertical, Horizontal, Vertical, Horizontal, Horizontal}, order)
}

func TestCarver_OnSeamSeesGridBeforeRemoval(t *testing.T) {
	c := NewCarver(randomGrid(t, 6, 4, 10))
	c.OnSeam = func(s Seam) {
		if s.Orientation() == Vertical {
			assert.Equal(t, c.Grid.Height(), s.Len())
		} else {
			assert.Equal(t, c.Grid.Width(), s.Len())
		}
		for i := 1; i < s.Len(); i++ {
			assert.LessOrEqual(t, abs(s.At(i)-s.At(i-1)), 1, "seam %v is not connected", s.Coords())
		}
	}
	assert.NoError(t, c.Carve(3, 2))
}

func TestCarver_KeepsThinFeature(t *testing.T) {
	assert := assert.New(t)

	stripe := Pixel{R: 200, G: 30, B: 30}
	g := newTestGrid(t, 10, 10, func(x, _ int) Pixel {
		if x == 5 {
			return stripe
		}
		return Pixel{R: white, G: white, B: white}
	})

	c := NewCarver(g)
	assert.NoError(c.Carve(6, 10))

	for y := 0; y < c.Grid.Height(); y++ {
		var found []int
		for x := 0; x < c.Grid.Width(); x++ {
			if c.Grid.At(x, y) == stripe {
				found = append(found, x)
			}
		}
		assert.Equal([]int{1}, found, "row %d", y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
