package seamcarve

import "fmt"

// Orientation tells which way a seam crosses the grid.
type Orientation int

const (
	// Vertical seams run top to bottom and hold one column per row.
	Vertical Orientation = iota
	// Horizontal seams run left to right and hold one row per column.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Seam is a connected path of one pixel per row (vertical) or per column (horizontal).
// Entry i is the cross coordinate of the path at position i.
type Seam struct {
	orientation Orientation
	coords      []int
}

func newSeam(o Orientation, length int) Seam {
	return Seam{orientation: o, coords: make([]int, length)}
}

// Orientation returns the direction of the seam.
func (s Seam) Orientation() Orientation { return s.orientation }

// Len returns the number of positions in the seam.
func (s Seam) Len() int { return len(s.coords) }

// At returns the cross coordinate at position i.
func (s Seam) At(i int) int {
	if i < 0 || i >= len(s.coords) {
		panic(fmt.Sprintf("seamcarve: seam index %d out of range [0,%d)", i, len(s.coords)))
	}
	return s.coords[i]
}

// Coords returns a copy of the seam coordinates.
func (s Seam) Coords() []int {
	c := make([]int, len(s.coords))
	copy(c, s.coords)
	return c
}

// NewSeam builds a seam from explicit coordinates.
func NewSeam(o Orientation, coords []int) Seam {
	s := newSeam(o, len(coords))
	copy(s.coords, coords)
	return s
}
