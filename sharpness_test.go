package goconverty_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/GreatValueCreamSoda/goconverty"
)

func grayImage(w, h int, fill uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{fill, fill, fill, 255})
		}
	}
	return img
}

func Test_Sharpness_FlatImageScoresZero(t *testing.T) {
	if got := goconverty.Sharpness(grayImage(32, 32, 180)); got != 0 {
		t.Fatalf("Sharpness(flat) = %g, want 0", got)
	}
}

func Test_Sharpness_EdgesScorePositive(t *testing.T) {
	// Vertical step edge down the middle.
	img := grayImage(32, 32, 0)
	for y := 0; y < 32; y++ {
		for x := 16; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	if got := goconverty.Sharpness(img); got <= 0 {
		t.Fatalf("Sharpness(step edge) = %g, want > 0", got)
	}
}

func Test_Sharpness_RanksContrast(t *testing.T) {
	// A checkerboard has far more edge response than a single step edge of
	// the same size; the score must rank them accordingly.
	step := grayImage(32, 32, 0)
	for y := 0; y < 32; y++ {
		for x := 16; x < 32; x++ {
			step.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	checker := grayImage(32, 32, 0)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x+y)%2 == 0 {
				checker.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}

	stepScore := goconverty.Sharpness(step)
	checkerScore := goconverty.Sharpness(checker)
	if checkerScore <= stepScore {
		t.Fatalf("Sharpness(checker) = %g should exceed Sharpness(step) = %g",
			checkerScore, stepScore)
	}
}
