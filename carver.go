package seamcarve

import "fmt"

// Stats counts the work done by a Carver.
type Stats struct {
	VerticalSeams   int
	HorizontalSeams int
	// Evaluations is the number of Energy calls made by the path searches.
	Evaluations int
}

// Carver shrinks a Grid one seam at a time.
// It owns the grid for the duration of the carving.
type Carver struct {
	Grid  *Grid
	Stats Stats

	// OnSeam, if set, is called with every seam right before it is removed.
	OnSeam func(Seam)
}

// NewCarver returns a carver working on g.
func NewCarver(g *Grid) *Carver {
	return &Carver{Grid: g}
}

// energy evaluates a single pixel and records the call.
func (c *Carver) energy(col, row int) int {
	c.Stats.Evaluations++
	return Energy(c.Grid, col, row)
}

// Carve removes vertical and horizontal seams until the grid measures
// targetWidth x targetHeight. Both axes are reduced in the same loop:
// every iteration removes at most one vertical seam and then at most one
// horizontal seam from the already narrowed grid.
func (c *Carver) Carve(targetWidth, targetHeight int) error {
	width, height := c.Grid.Width(), c.Grid.Height()

	if targetWidth < 1 || targetWidth > width {
		return fmt.Errorf("%w: width %d must be between 1 and %d", ErrInvalidTarget, targetWidth, width)
	}
	if targetHeight < 1 || targetHeight > height {
		return fmt.Errorf("%w: height %d must be between 1 and %d", ErrInvalidTarget, targetHeight, height)
	}

	for c.Grid.Width() > targetWidth || c.Grid.Height() > targetHeight {
		if c.Grid.Width() > targetWidth {
			if err := c.removeSeam(c.MinimumVerticalSeam()); err != nil {
				return err
			}
			c.Stats.VerticalSeams++
		}
		if c.Grid.Height() > targetHeight {
			if err := c.removeSeam(c.MinimumHorizontalSeam()); err != nil {
				return err
			}
			c.Stats.HorizontalSeams++
		}
	}
	return nil
}

func (c *Carver) removeSeam(s Seam) error {
	if c.OnSeam != nil {
		c.OnSeam(s)
	}
	if s.Orientation() == Vertical {
		return RemoveVerticalSeam(c.Grid, s)
	}
	return RemoveHorizontalSeam(c.Grid, s)
}
