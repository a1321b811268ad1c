package seamcarve

// MinimumVerticalSeam runs FindVerticalPath from every column and returns the
// cheapest path. When several paths share the lowest cost the leftmost start wins.
func (c *Carver) MinimumVerticalSeam() Seam {
	best, lowest := c.FindVerticalPath(0)
	for x := 1; x < c.Grid.Width(); x++ {
		if seam, total := c.FindVerticalPath(x); total < lowest {
			best, lowest = seam, total
		}
	}
	return best
}

// MinimumHorizontalSeam runs FindHorizontalPath from every row and returns the
// cheapest path. When several paths share the lowest cost the topmost start wins.
func (c *Carver) MinimumHorizontalSeam() Seam {
	best, lowest := c.FindHorizontalPath(0)
	for y := 1; y < c.Grid.Height(); y++ {
		if seam, total := c.FindHorizontalPath(y); total < lowest {
			best, lowest = seam, total
		}
	}
	return best
}
