package goconverty

import "math"

// Convert reinterprets a raw frame dump as the plane layout of the given
// format and produces a full-resolution BGR raster.
//
// The buffer is expected to have passed Validate already; Convert re-derives
// the same size invariant defensively and fails with a SizeMismatchError if
// it is violated. The buffer is only read, never mutated, and the returned
// image is allocated fresh per call, so concurrent conversions over distinct
// buffers need no coordination.
func Convert(buf []byte, width, height int, f PixelFormat) (*BGRImage, error) {
	if err := Validate(len(buf), width, height, f); err != nil {
		return nil, err
	}

	switch f {
	case FormatUYVY:
		return convertUYVY(buf, width, height), nil
	case FormatNV12:
		return convertNV12(buf, width, height), nil
	}
	return nil, &UnsupportedFormatError{Tag: f.String()}
}

// convertUYVY expands packed 4:2:2 into BGR. Each 4-byte group [U, Y0, V, Y1]
// spans two horizontal pixels that share the group's chroma pair.
func convertUYVY(buf []byte, width, height int) *BGRImage {
	img := NewBGRImage(width, height)
	stride := width * 2

	for y := 0; y < height; y++ {
		row := buf[y*stride : y*stride+stride]

		x := 0
		for ; x+1 < width; x += 2 {
			off := x * 2
			u, v := row[off], row[off+2]
			b0, g0, r0 := yuvToBGR(row[off+1], u, v)
			img.setBGR(x, y, b0, g0, r0)
			b1, g1, r1 := yuvToBGR(row[off+3], u, v)
			img.setBGR(x+1, y, b1, g1, r1)
		}
		if x < width {
			// Odd width leaves a trailing pixel whose group is cut short
			// after its Y sample. Its U is present; the V sample comes from
			// the previous group, or is neutral when the row has none.
			off := x * 2
			u := row[off]
			v := uint8(128)
			if off >= 2 {
				v = row[off-2]
			}
			pb, pg, pr := yuvToBGR(row[off+1], u, v)
			img.setBGR(x, y, pb, pg, pr)
		}
	}
	return img
}

// convertNV12 expands semi-planar 4:2:0 into BGR. The luma plane holds
// height*width bytes; the chroma plane that follows holds interleaved U,V
// pairs, one pair per 2x2 luma block, indexed at (x/2, y/2).
func convertNV12(buf []byte, width, height int) *BGRImage {
	img := NewBGRImage(width, height)
	luma := buf[:width*height]
	chroma := buf[width*height:]

	// The validated size truncates the chroma plane for odd heights, so the
	// plane can end one row short of ceil(height/2). Chroma row indices are
	// clamped to the last complete row rather than read past the buffer.
	chromaRows := len(chroma) / width

	for y := 0; y < height; y++ {
		cy := y / 2
		if cy >= chromaRows {
			cy = chromaRows - 1
		}
		var chromaRow []byte
		if cy >= 0 {
			chromaRow = chroma[cy*width : cy*width+width]
		}

		for x := 0; x < width; x++ {
			u, v := uint8(128), uint8(128)
			if chromaRow != nil {
				cx := x &^ 1
				if cx+1 >= width {
					cx = width - 2
				}
				if cx >= 0 {
					u, v = chromaRow[cx], chromaRow[cx+1]
				}
			}
			pb, pg, pr := yuvToBGR(luma[y*width+x], u, v)
			img.setBGR(x, y, pb, pg, pr)
		}
	}
	return img
}

// yuvToBGR applies the full-range BT.601 YUV to RGB transform, rounding to
// nearest and clamping each channel to [0,255].
func yuvToBGR(y, u, v uint8) (b, g, r uint8) {
	fy := float64(y)
	du := float64(u) - 128
	dv := float64(v) - 128

	r = clampRound(fy + 1.402*dv)
	g = clampRound(fy - 0.344136*du - 0.714136*dv)
	b = clampRound(fy + 1.772*du)
	return b, g, r
}

func clampRound(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
