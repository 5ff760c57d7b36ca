package goconverty

// PixelFormat identifies the memory layout of a raw frame dump.
//
// The set of formats is closed: every format carries its own bytes-per-pixel
// multiplier, chroma subsampling ratio, and plane/interleaving layout, and
// the converter dispatches on the format exactly once per buffer. Anything
// outside this set is rejected with an UnsupportedFormatError before any
// conversion is attempted.
type PixelFormat int

const (
	// FormatUYVY is packed 4:2:2: each 4-byte group [U, Y0, V, Y1] encodes
	// two horizontal pixels sharing one chroma pair. 2 bytes per pixel.
	FormatUYVY PixelFormat = iota

	// FormatNV12 is semi-planar 4:2:0: a full-resolution luma plane followed
	// by an interleaved U/V plane with one chroma pair per 2x2 luma block.
	// 1.5 bytes per pixel.
	FormatNV12
)

// String returns the format's wire tag, the same string ParsePixelFormat
// accepts.
func (f PixelFormat) String() string {
	switch f {
	case FormatUYVY:
		return "uyvy"
	case FormatNV12:
		return "nv12"
	}
	return "unknown"
}

// ParsePixelFormat resolves a format tag to a PixelFormat.
//
// Tags are case-sensitive: only "uyvy" and "nv12" are recognized. Any other
// tag returns an UnsupportedFormatError.
func ParsePixelFormat(tag string) (PixelFormat, error) {
	switch tag {
	case "uyvy":
		return FormatUYVY, nil
	case "nv12":
		return FormatNV12, nil
	}
	return 0, &UnsupportedFormatError{Tag: tag}
}

// ExpectedSize returns the exact byte count a raw buffer must have for the
// given geometry in this format.
//
// UYVY is width*height*2. NV12 is width*height*3/2 with the division
// truncated toward zero; for odd heights this truncation is deliberate and
// must not be rounded up, since it determines which buffers validate.
func (f PixelFormat) ExpectedSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, &InvalidGeometryError{Width: width, Height: height}
	}

	switch f {
	case FormatUYVY:
		return width * height * 2, nil
	case FormatNV12:
		return width*height + width*height/2, nil
	}
	return 0, &UnsupportedFormatError{Tag: f.String()}
}

// Validate checks that a buffer length is exactly consistent with the
// declared geometry and format.
//
// It is a pure function of its arguments: a buffer of the right length
// always validates regardless of content, and a buffer of any other length
// always fails with a SizeMismatchError carrying both sizes.
func Validate(bufLen, width, height int, f PixelFormat) error {
	expected, err := f.ExpectedSize(width, height)
	if err != nil {
		return err
	}
	if bufLen != expected {
		return &SizeMismatchError{Actual: bufLen, Expected: expected, Format: f}
	}
	return nil
}
