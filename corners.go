package goconverty

import (
	"image"
	"math"
	"sort"
)

// Corner is a detected corner location in image coordinates.
type Corner struct {
	X int
	Y int
}

// GoodFeaturesToTrack detects strong corners using the Shi-Tomasi criterion.
//
// The corner response of a pixel is the minimum eigenvalue of its 3x3-summed
// gradient structure tensor. Pixels scoring below qualityLevel times the
// strongest response are rejected; survivors are picked strongest-first,
// discarding any candidate closer than minDistance pixels to an already
// accepted corner, until maxCorners have been accepted.
//
// With maxCorners 100, qualityLevel 0.01, and minDistance 10 it behaves like
// the usual batch-comparison settings.
func GoodFeaturesToTrack(img image.Image, maxCorners int, qualityLevel float64,
	minDistance int) []Corner {

	gray, w, h := grayscale(img)
	if w < 3 || h < 3 || maxCorners <= 0 {
		return nil
	}

	response := cornerResponse(gray, w, h)

	var maxResp float64
	for _, v := range response {
		if v > maxResp {
			maxResp = v
		}
	}
	if maxResp <= 0 {
		return nil
	}
	threshold := qualityLevel * maxResp

	type candidate struct {
		Corner
		resp float64
	}
	var candidates []candidate
	// The tensor window is undefined on the outermost pixel ring.
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if r := response[y*w+x]; r >= threshold {
				candidates = append(candidates, candidate{Corner{x, y}, r})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].resp > candidates[j].resp
	})

	minDistSq := minDistance * minDistance
	var corners []Corner
	for _, c := range candidates {
		tooClose := false
		for _, a := range corners {
			dx, dy := c.X-a.X, c.Y-a.Y
			if dx*dx+dy*dy < minDistSq {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		corners = append(corners, c.Corner)
		if len(corners) >= maxCorners {
			break
		}
	}
	return corners
}

// cornerResponse computes the Shi-Tomasi minimum-eigenvalue response for
// every pixel: Sobel gradients, gradient products summed over a 3x3 window,
// then the smaller eigenvalue of the resulting 2x2 tensor.
func cornerResponse(gray []float64, w, h int) []float64 {
	ixx := make([]float64, w*h)
	iyy := make([]float64, w*h)
	ixy := make([]float64, w*h)

	for y := 0; y < h; y++ {
		ym, yp := reflect(y-1, h), reflect(y+1, h)
		for x := 0; x < w; x++ {
			xm, xp := reflect(x-1, w), reflect(x+1, w)

			gx := gray[ym*w+xp] + 2*gray[y*w+xp] + gray[yp*w+xp] -
				gray[ym*w+xm] - 2*gray[y*w+xm] - gray[yp*w+xm]
			gy := gray[yp*w+xm] + 2*gray[yp*w+x] + gray[yp*w+xp] -
				gray[ym*w+xm] - 2*gray[ym*w+x] - gray[ym*w+xp]

			i := y*w + x
			ixx[i] = gx * gx
			iyy[i] = gy * gy
			ixy[i] = gx * gy
		}
	}

	response := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var a, c, b float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					i := (y+dy)*w + (x+dx)
					a += ixx[i]
					c += iyy[i]
					b += ixy[i]
				}
			}
			// Smaller eigenvalue of [[a, b], [b, c]].
			d := a - c
			response[y*w+x] = (a + c - math.Sqrt(d*d+4*b*b)) / 2
		}
	}
	return response
}
