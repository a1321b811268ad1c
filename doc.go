/*
Package seamcarve is a content aware image shrinking library. It reduces an image to a given width and height
by repeatedly removing the least important vertical or horizontal seam of pixels.

The importance of a pixel is its energy: the squared color difference between its left and right neighbors
plus the one between its top and bottom neighbors, wrapping around the image edges.
Seams are found with a greedy walk started from every column (or row); the cheapest walk is removed
and the remaining pixels are shifted over it. Both axes are carved in the same loop, one seam at a time.

The package reads and writes plain text PPM (P3) images and also accepts the usual raster formats.
The seamcarve command wraps it; to check the supported flags type:

	$ seamcarve --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/seamcarve"
	)

	func main() {
		p := &seamcarve.Processor{
			NewWidth:  120,
			NewHeight: 80,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error carving image: %s", err.Error())
		}
	}

The engine itself can be used directly on a Grid:

	g, err := seamcarve.LoadPPM("image.ppm", 200, 100)
	if err != nil {
		return err
	}
	c := seamcarve.NewCarver(g)
	if err := c.Carve(120, 80); err != nil {
		return err
	}
	return seamcarve.SavePPM("carved.ppm", c.Grid)
*/
package seamcarve
