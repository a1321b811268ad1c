package seamcarve

// Energy returns the local contrast of the pixel at (col, row): the sum of the
// squared channel differences between its left and right neighbors plus the
// same sum for its top and bottom neighbors.
// Neighbors wrap around the grid edges, independently on both axes, so a pixel
// in the first column uses the last column as its left neighbor.
func Energy(g *Grid, col, row int) int {
	w, h := g.Width(), g.Height()

	left := g.At((col-1+w)%w, row)
	right := g.At((col+1)%w, row)
	top := g.At(col, (row-1+h)%h)
	bottom := g.At(col, (row+1)%h)

	return gradient(left, right) + gradient(top, bottom)
}

// gradient is the squared distance between two pixels in RGB space.
func gradient(a, b Pixel) int {
	dr := int(b.R) - int(a.R)
	dg := int(b.G) - int(a.G)
	db := int(b.B) - int(a.B)

	return dr*dr + dg*dg + db*db
}
