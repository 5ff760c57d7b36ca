package goconverty

import "fmt"

// SizeMismatchError reports a raw buffer whose length is inconsistent with
// the declared geometry and pixel format.
//
// A size mismatch is deterministic: retrying with the same inputs cannot
// succeed, so callers should skip the offending file and continue with the
// rest of the batch.
type SizeMismatchError struct {
	Actual   int
	Expected int
	Format   PixelFormat
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("buffer size %d does not match expected %d for %s",
		e.Actual, e.Expected, e.Format)
}

// UnsupportedFormatError reports a format tag outside the closed set of
// recognized pixel formats.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported pixel format %q", e.Tag)
}

// InvalidGeometryError reports a non-positive width or height.
type InvalidGeometryError struct {
	Width  int
	Height int
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry %dx%d: width and height must be "+
		"positive", e.Width, e.Height)
}
