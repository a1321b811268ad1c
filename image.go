package seamcarve

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
)

// zstdMagic is the frame header of a zstd compressed stream.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// decodeImg reads a source image into a Grid. Plain PPM streams go through
// DecodePPM, zstd compressed streams are unpacked first and every other
// format is handed over to the standard image decoders.
func decodeImg(r io.Reader, width, height int) (*Grid, error) {
	br := bufio.NewReader(r)
	if err := skipSpace(br); err != nil {
		return nil, err
	}

	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd decode: %w", err)
		}
		defer zr.Close()
		return decodeImg(zr, width, height)
	case isPPM(head):
		return DecodePPM(br, width, height)
	}

	src, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	b := src.Bounds()
	if (width != 0 && b.Dx() != width) || (height != 0 && b.Dy() != height) {
		return nil, fmt.Errorf("%w: declared %dx%d, image is %dx%d",
			ErrDimensionMismatch, width, height, b.Dx(), b.Dy())
	}
	return GridFromImage(src)
}

// skipSpace discards the blanks preceding the first token of a text image.
// Binary image formats never start with a blank.
func skipSpace(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			br.Discard(1)
		default:
			return nil
		}
	}
}

// isPPM reports whether the stream starts with a P3 marker.
func isPPM(head []byte) bool {
	return len(head) >= 2 && (head[0] == 'P' || head[0] == 'p') && head[1] == '3'
}

// encodeImg encodes the grid to a destination of type io.Writer.
// Files are encoded according to their extension, any other writer receives plain PPM.
func encodeImg(w io.Writer, g *Grid) error {
	switch w := w.(type) {
	case *os.File:
		ext := strings.ToLower(filepath.Ext(w.Name()))
		switch ext {
		case "", ".ppm":
			return EncodePPM(w, g)
		case ".zst":
			zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
			if err != nil {
				return fmt.Errorf("zstd encode: %w", err)
			}
			if err := EncodePPM(zw, g); err != nil {
				zw.Close()
				return err
			}
			return zw.Close()
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, g.Image(), &jpeg.Options{Quality: 100})
		case ".png":
			return png.Encode(w, g.Image())
		case ".bmp":
			return bmp.Encode(w, g.Image())
		default:
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
	default:
		return EncodePPM(w, g)
	}
}

// Image returns the visible part of the grid as an opaque *image.NRGBA.
func (g *Grid) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		di := dst.PixOffset(0, y)
		for x := 0; x < g.width; x++ {
			px := g.pix[x*g.stride+y]
			dst.Pix[di+0] = px.R
			dst.Pix[di+1] = px.G
			dst.Pix[di+2] = px.B
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}
	return dst
}

// GridFromImage copies any image into a new Grid. The alpha channel is dropped.
func GridFromImage(img image.Image) (*Grid, error) {
	src := imaging.Clone(img)
	b := src.Bounds()

	g, err := NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			g.pix[x*g.stride+y] = Pixel{R: src.Pix[si+0], G: src.Pix[si+1], B: src.Pix[si+2]}
			si += 4
		}
	}
	return g, nil
}
