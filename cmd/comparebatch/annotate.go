package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/GreatValueCreamSoda/goconverty"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	cornerColor = color.NRGBA{R: 255, A: 255} // red dots
	textColor   = color.NRGBA{G: 255, A: 255} // green labels
)

// annotate copies src and draws the detected corners plus a three-line text
// block (label, sharpness score, corner count) in the top-left corner.
func annotate(src image.Image, label string, sharpness float64,
	corners []goconverty.Corner) *image.NRGBA {

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)

	for _, c := range corners {
		drawDot(dst, c.X, c.Y, 3, cornerColor)
	}

	lines := []string{
		label,
		fmt.Sprintf("Sharpness: %.2f", sharpness),
		fmt.Sprintf("Corners: %d", len(corners)),
	}
	for i, line := range lines {
		drawText(dst, 10, 30+30*i, line)
	}
	return dst
}

// drawDot fills a circle of the given radius around (cx, cy), clipped to the
// image bounds.
func drawDot(dst *image.NRGBA, cx, cy, radius int, col color.NRGBA) {
	b := dst.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				dst.SetNRGBA(x, y, col)
			}
		}
	}
}

func drawText(dst *image.NRGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// scaleToHeight resizes img to the given height, preserving aspect ratio.
func scaleToHeight(img *image.NRGBA, h int) *image.NRGBA {
	if img.Bounds().Dy() == h {
		return img
	}
	w := img.Bounds().Dx() * h / img.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(),
		xdraw.Src, nil)
	return dst
}

// hstack places a and b side by side on a shared canvas. Heights are assumed
// equal; a shorter image would simply leave transparent rows.
func hstack(a, b *image.NRGBA) *image.NRGBA {
	wa, ha := a.Bounds().Dx(), a.Bounds().Dy()
	wb, hb := b.Bounds().Dx(), b.Bounds().Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, wa+wb, max(ha, hb)))
	xdraw.Draw(dst, image.Rect(0, 0, wa, ha), a, a.Bounds().Min, xdraw.Src)
	xdraw.Draw(dst, image.Rect(wa, 0, wa+wb, hb), b, b.Bounds().Min, xdraw.Src)
	return dst
}
