package seamcarve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

const maxColorValue = 255

// ppmScanner reads the whitespace separated tokens of a plain PPM stream.
type ppmScanner struct {
	sc *bufio.Scanner
}

func newPPMScanner(r io.Reader) *ppmScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &ppmScanner{sc: sc}
}

// next returns the next token; ok is false at the end of the input.
func (s *ppmScanner) next() (tok string, ok bool, err error) {
	if s.sc.Scan() {
		return s.sc.Text(), true, nil
	}
	return "", false, s.sc.Err()
}

// readInt reads the next token as an integer. A missing token is reported with eofErr.
func (s *ppmScanner) readInt(eofErr error) (int, error) {
	tok, ok, err := s.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, eofErr
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonInteger, tok)
	}
	return v, nil
}

// DecodePPM reads a plain text (P3) PPM image into a new Grid.
// The header size must match width x height; a declared size of zero accepts
// whatever the header says. The maximum color value must be 255 and exactly
// width*height*3 channel values in [0, 255] must follow.
// On failure no grid is returned.
func DecodePPM(r io.Reader, width, height int) (*Grid, error) {
	s := newPPMScanner(r)

	magic, ok, err := s.next()
	if err != nil {
		return nil, err
	}
	if !ok || len(magic) != 2 || (magic[0] != 'P' && magic[0] != 'p') || magic[1] != '3' {
		return nil, fmt.Errorf("%w: type is %q instead of P3", ErrInvalidFormat, magic)
	}

	w, err := s.readInt(ErrNonInteger)
	if err != nil {
		return nil, err
	}
	if width != 0 && w != width {
		return nil, fmt.Errorf("%w: input width (%d) does not match value in file (%d)", ErrDimensionMismatch, width, w)
	}
	h, err := s.readInt(ErrNonInteger)
	if err != nil {
		return nil, err
	}
	if height != 0 && h != height {
		return nil, fmt.Errorf("%w: input height (%d) does not match value in file (%d)", ErrDimensionMismatch, height, h)
	}
	depth, err := s.readInt(ErrNonInteger)
	if err != nil {
		return nil, err
	}
	if depth != maxColorValue {
		return nil, fmt.Errorf("%w: %d", ErrColorDepth, depth)
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	var ch [3]uint8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for i := range ch {
				v, err := s.readInt(ErrTooFewValues)
				if err != nil {
					return nil, err
				}
				if v < 0 || v > maxColorValue {
					return nil, fmt.Errorf("%w: %d", ErrColorValue, v)
				}
				ch[i] = uint8(v)
			}
			g.Set(x, y, Pixel{R: ch[0], G: ch[1], B: ch[2]})
		}
	}

	tok, ok, err := s.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, fmt.Errorf("%w: unexpected %q after the last pixel", ErrTooManyValues, tok)
	}
	return g, nil
}

// EncodePPM writes g as a plain text (P3) PPM image: the marker, the current
// size and the maximum color value, followed by one channel value per line in
// row-major order.
func EncodePPM(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", g.Width(), g.Height(), maxColorValue)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			px := g.At(x, y)
			fmt.Fprintf(bw, "%d\n%d\n%d\n", px.R, px.G, px.B)
		}
	}
	return bw.Flush()
}

// LoadPPM opens path and decodes it with DecodePPM.
func LoadPPM(path string, width, height int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	return DecodePPM(f, width, height)
}

// SavePPM writes g to path, replacing any existing file.
func SavePPM(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	if err := EncodePPM(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
