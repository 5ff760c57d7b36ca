package goconverty

import (
	"image"
	"image/color"
)

// BGRImage is a full-resolution three-channel raster produced by Convert.
//
// Pix holds height rows of width pixels, 3 bytes per pixel in B, G, R order
// to match the channel ordering downstream image writers expect from raw
// frame tooling. A BGRImage is allocated fresh per conversion and is owned
// by the caller.
//
// BGRImage implements image.Image so it can be handed directly to standard
// encoders.
type BGRImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBGRImage allocates a zeroed raster for the given geometry.
func NewBGRImage(width, height int) *BGRImage {
	return &BGRImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

func (p *BGRImage) ColorModel() color.Model { return color.RGBAModel }

func (p *BGRImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

func (p *BGRImage) At(x, y int) color.Color {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return color.RGBA{}
	}
	b, g, r := p.BGRAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// BGRAt returns the blue, green, and red samples of the pixel at (x, y).
// The caller must keep x and y inside the image bounds.
func (p *BGRImage) BGRAt(x, y int) (b, g, r uint8) {
	i := (y*p.Width + x) * 3
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

func (p *BGRImage) setBGR(x, y int, b, g, r uint8) {
	i := (y*p.Width + x) * 3
	p.Pix[i] = b
	p.Pix[i+1] = g
	p.Pix[i+2] = r
}
