package seamcarve

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarve/utils"
)

// Processor options
type Processor struct {
	// SourceWidth and SourceHeight are the declared size of the source image.
	// A zero value accepts the size found in the image itself.
	SourceWidth  int
	SourceHeight int
	NewWidth     int
	NewHeight    int
	// Percentage interprets NewWidth and NewHeight as the percentage to remove.
	Percentage bool
	// Square reduces the image to a square based on the shorter target edge.
	Square bool
	// Scale downsizes the image proportionally before carving
	// when it has to shrink on both axes.
	Scale   bool
	Debug   bool
	Spinner *utils.Spinner
}

// Process reads the source image, carves it down to the requested size and
// encodes the result into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	g, err := p.Load(r)
	if err != nil {
		return err
	}
	if g, err = p.Resize(g); err != nil {
		return err
	}
	return encodeImg(w, g)
}

// Load decodes the source image and checks it against the declared size.
func (p *Processor) Load(r io.Reader) (*Grid, error) {
	return decodeImg(r, p.SourceWidth, p.SourceHeight)
}

// Resize carves g down to the target size and returns the resulting grid.
func (p *Processor) Resize(g *Grid) (*Grid, error) {
	tw, th, err := p.Targets(g.Width(), g.Height())
	if err != nil {
		return nil, err
	}

	if p.Scale && tw < g.Width() && th < g.Height() {
		if g, err = p.scale(g, tw, th); err != nil {
			return nil, err
		}
	}

	c := NewCarver(g)
	if p.Debug {
		c.OnSeam = func(s Seam) {
			log.Printf("removing %s seam %v from %dx%d grid", s.Orientation(), s.coords, c.Grid.Width(), c.Grid.Height())
		}
	}
	if err := c.Carve(tw, th); err != nil {
		return nil, err
	}
	if p.Debug {
		log.Printf("carved %d vertical and %d horizontal seams with %d energy evaluations",
			c.Stats.VerticalSeams, c.Stats.HorizontalSeams, c.Stats.Evaluations)
	}
	return c.Grid, nil
}

// Targets returns the width and height the source image is carved to.
// A zero target keeps the source dimension.
func (p *Processor) Targets(width, height int) (int, int, error) {
	tw, th := p.NewWidth, p.NewHeight

	if p.Percentage {
		if tw < 0 || tw >= 100 || th < 0 || th >= 100 {
			return 0, 0, fmt.Errorf("%w: percentage must be between 0 and 99", ErrInvalidTarget)
		}
		tw = width - int(float64(width)*float64(tw)/100)
		th = height - int(float64(height)*float64(th)/100)
	} else {
		if tw == 0 {
			tw = width
		}
		if th == 0 {
			th = height
		}
	}

	if p.Square {
		tw = utils.Min(tw, th)
		th = tw
	}

	if tw < 1 || tw > width {
		return 0, 0, fmt.Errorf("%w: width %d must be between 1 and %d", ErrInvalidTarget, tw, width)
	}
	if th < 1 || th > height {
		return 0, 0, fmt.Errorf("%w: height %d must be between 1 and %d", ErrInvalidTarget, th, height)
	}
	return tw, th, nil
}

// scale shrinks the grid by the smaller of the two scale factors, so that one
// side reaches its target and the seam carver only has to handle the other one.
func (p *Processor) scale(g *Grid, tw, th int) (*Grid, error) {
	w, h := float64(g.Width()), float64(g.Height())
	factor := math.Min(w/float64(tw), h/float64(th))

	sw := utils.Max(int(math.Round(w/factor)), tw)
	sh := utils.Max(int(math.Round(h/factor)), th)

	return GridFromImage(imaging.Resize(g.Image(), sw, sh, imaging.Lanczos))
}
