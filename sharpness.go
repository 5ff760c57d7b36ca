package goconverty

import "image"

// Sharpness scores how much edge detail an image contains.
//
// The score is the population variance of a 3x3 Laplacian applied to the
// BT.601 grayscale of the image. Flat images score exactly 0; higher values
// indicate more edges. Scores are only meaningful relative to other images
// of similar content and resolution.
func Sharpness(img image.Image) float64 {
	gray, w, h := grayscale(img)
	if w == 0 || h == 0 {
		return 0
	}

	lap := laplacian(gray, w, h)

	var sum float64
	for _, v := range lap {
		sum += v
	}
	mean := sum / float64(len(lap))

	var variance float64
	for _, v := range lap {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(lap))
}

// grayscale flattens an image to BT.601 luma, one float64 per pixel.
func grayscale(img image.Image) ([]float64, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit samples; scale back to 8-bit range.
			gray[y*w+x] = (0.299*float64(r) + 0.587*float64(g) +
				0.114*float64(bl)) / 257.0
		}
	}
	return gray, w, h
}

// laplacian applies the 3x3 kernel [0 1 0; 1 -4 1; 0 1 0] with reflected
// borders, so border pixels contribute instead of being dropped.
func laplacian(gray []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := gray[y*w+x]
			up := gray[reflect(y-1, h)*w+x]
			down := gray[reflect(y+1, h)*w+x]
			left := gray[y*w+reflect(x-1, w)]
			right := gray[y*w+reflect(x+1, w)]
			out[y*w+x] = up + down + left + right - 4*c
		}
	}
	return out
}

// reflect mirrors an out-of-range index back into [0, n) without repeating
// the edge sample (the 101 reflection OpenCV defaults to).
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	if i < 0 {
		i = -i
	}
	if i >= n {
		i = 2*n - 2 - i
	}
	return i
}
