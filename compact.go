package seamcarve

import "fmt"

// RemoveVerticalSeam deletes the pixels of a vertical seam by shifting every
// pixel right of the seam one column to the left, then drops the last column.
// The grid is modified in place and is left untouched if the seam is rejected.
func RemoveVerticalSeam(g *Grid, s Seam) error {
	if err := validateSeam(s, Vertical, g.Height(), g.Width()); err != nil {
		return err
	}
	if g.width < 2 {
		return fmt.Errorf("%w: width is %d", ErrGridTooSmall, g.width)
	}

	for y := 0; y < g.height; y++ {
		for x := s.coords[y]; x < g.width-1; x++ {
			g.pix[x*g.stride+y] = g.pix[(x+1)*g.stride+y]
		}
	}
	g.width--

	return nil
}

// RemoveHorizontalSeam deletes the pixels of a horizontal seam by shifting every
// pixel below the seam one row up, then drops the last row.
func RemoveHorizontalSeam(g *Grid, s Seam) error {
	if err := validateSeam(s, Horizontal, g.Width(), g.Height()); err != nil {
		return err
	}
	if g.height < 2 {
		return fmt.Errorf("%w: height is %d", ErrGridTooSmall, g.height)
	}

	for x := 0; x < g.width; x++ {
		col := g.pix[x*g.stride : x*g.stride+g.height]
		copy(col[s.coords[x]:], col[s.coords[x]+1:])
	}
	g.height--

	return nil
}

// validateSeam checks that s runs along an axis of the given length and that
// every coordinate lies in [0, limit).
func validateSeam(s Seam, o Orientation, length, limit int) error {
	if s.orientation != o || len(s.coords) != length {
		return fmt.Errorf("%w: %s seam of length %d, want %s seam of length %d",
			ErrSeamLength, s.orientation, len(s.coords), o, length)
	}
	for i, v := range s.coords {
		if v < 0 || v >= limit {
			return fmt.Errorf("%w: position %d has coordinate %d, want [0,%d)", ErrSeamOutOfRange, i, v, limit)
		}
	}
	return nil
}
