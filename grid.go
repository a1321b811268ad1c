package seamcarve

import "fmt"

// Pixel holds the three color channels of a single grid cell.
type Pixel struct {
	R, G, B uint8
}

// Grid is a rectangular pixel buffer addressed by (column, row).
// The buffer is allocated once; removing a seam only shrinks the logical
// width or height, the trailing column or row stays allocated but is no longer
// reachable through the accessors.
type Grid struct {
	pix    []Pixel
	stride int // physical number of rows per column
	width  int
	height int
}

// NewGrid allocates a black grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		pix:    make([]Pixel, width*height),
		stride: height,
		width:  width,
		height: height,
	}, nil
}

// Width returns the current number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the current number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the pixel at (col, row).
func (g *Grid) At(col, row int) Pixel {
	return g.pix[g.offset(col, row)]
}

// Set replaces the pixel at (col, row).
func (g *Grid) Set(col, row int, px Pixel) {
	g.pix[g.offset(col, row)] = px
}

// Clone returns a compact copy of the grid holding only the visible pixels.
func (g *Grid) Clone() *Grid {
	dst := &Grid{
		pix:    make([]Pixel, g.width*g.height),
		stride: g.height,
		width:  g.width,
		height: g.height,
	}
	for x := 0; x < g.width; x++ {
		copy(dst.pix[x*dst.stride:(x+1)*dst.stride], g.pix[x*g.stride:x*g.stride+g.height])
	}
	return dst
}

// offset maps a logical coordinate to the buffer index.
// Out of range coordinates panic, since the column-major layout
// would otherwise silently alias a pixel of the next column.
func (g *Grid) offset(col, row int) int {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		panic(fmt.Sprintf("seamcarve: pixel (%d,%d) outside %dx%d grid", col, row, g.width, g.height))
	}
	return col*g.stride + row
}
