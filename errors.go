package seamcarve

import "errors"

var (
	// ErrInvalidDimensions indicates a grid was requested with a width or height below one.
	ErrInvalidDimensions = errors.New("seamcarve: grid width and height must be at least 1")
	// ErrInvalidTarget indicates a target size that is non-positive or larger than the source.
	ErrInvalidTarget = errors.New("seamcarve: invalid target dimension")
	// ErrGridTooSmall indicates a seam removal that would leave an empty grid.
	ErrGridTooSmall = errors.New("seamcarve: grid is too small to remove a seam")
	// ErrSeamLength indicates a seam whose orientation or length does not fit the grid.
	ErrSeamLength = errors.New("seamcarve: seam does not match the grid size")
	// ErrSeamOutOfRange indicates a seam coordinate outside the grid.
	ErrSeamOutOfRange = errors.New("seamcarve: seam coordinate out of range")

	// ErrInvalidFormat indicates the input does not start with the P3 marker.
	ErrInvalidFormat = errors.New("seamcarve: invalid image type")
	// ErrNonInteger indicates a header or color token that is not an integer.
	ErrNonInteger = errors.New("seamcarve: read non-integer value")
	// ErrDimensionMismatch indicates the header size differs from the declared size.
	ErrDimensionMismatch = errors.New("seamcarve: image size does not match the declared size")
	// ErrColorDepth indicates a maximum color value other than 255.
	ErrColorDepth = errors.New("seamcarve: invalid color depth")
	// ErrColorValue indicates a channel value outside [0, 255].
	ErrColorValue = errors.New("seamcarve: invalid color value")
	// ErrTooFewValues indicates the input ended before every channel was read.
	ErrTooFewValues = errors.New("seamcarve: not enough color values")
	// ErrTooManyValues indicates trailing values after the last pixel.
	ErrTooManyValues = errors.New("seamcarve: too many color values")

	// ErrUnsupportedFormat indicates an output extension with no known encoder.
	ErrUnsupportedFormat = errors.New("seamcarve: unsupported image format")
)
