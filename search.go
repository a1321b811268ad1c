package seamcarve

// FindVerticalPath walks the grid from the top row to the bottom row starting
// at column start. On every row it either keeps the current column or steps
// one column aside, picking the locally cheapest of the valid moves.
// Ties favor staying in place; a tie between the two side moves favors col+1.
// It returns the path together with the sum of the energies along it.
//
// The walk is greedy: it does not guarantee the globally cheapest seam.
func (c *Carver) FindVerticalPath(start int) (Seam, int) {
	width, height := c.Grid.Width(), c.Grid.Height()
	seam := newSeam(Vertical, height)

	col := start
	seam.coords[0] = col
	total := c.energy(col, 0)

	for row := 1; row < height; row++ {
		forward := c.energy(col, row)

		switch {
		case width == 1:
			total += forward
		case col == 0:
			next := c.energy(col+1, row)
			if next < forward {
				total += next
				col++
			} else {
				total += forward
			}
		case col == width-1:
			prev := c.energy(col-1, row)
			if forward <= prev {
				total += forward
			} else {
				total += prev
				col--
			}
		default:
			prev := c.energy(col-1, row)
			next := c.energy(col+1, row)
			switch {
			case forward <= next && forward <= prev:
				total += forward
			case (next < forward && next < prev) || (next == prev && next < forward):
				total += next
				col++
			default:
				total += prev
				col--
			}
		}
		seam.coords[row] = col
	}
	return seam, total
}

// FindHorizontalPath is the row-wise counterpart of FindVerticalPath: it walks
// from the first to the last column starting at row start.
// Ties favor staying in place; a tie between the two side moves favors row-1.
func (c *Carver) FindHorizontalPath(start int) (Seam, int) {
	width, height := c.Grid.Width(), c.Grid.Height()
	seam := newSeam(Horizontal, width)

	row := start
	seam.coords[0] = row
	total := c.energy(0, row)

	for col := 1; col < width; col++ {
		forward := c.energy(col, row)

		switch {
		case height == 1:
			total += forward
		case row == 0:
			down := c.energy(col, row+1)
			if down < forward {
				total += down
				row++
			} else {
				total += forward
			}
		case row == height-1:
			up := c.energy(col, row-1)
			if forward <= up {
				total += forward
			} else {
				total += up
				row--
			}
		default:
			up := c.energy(col, row-1)
			down := c.energy(col, row+1)
			switch {
			case forward <= down && forward <= up:
				total += forward
			case (up < forward && up < down) || (up == down && up < forward):
				total += up
				row--
			default:
				total += down
				row++
			}
		}
		seam.coords[col] = row
	}
	return seam, total
}
