// Package warp rectifies a quadrilateral region of an image into a
// rectangle using an inverse homography and bilinear sampling.
package warp

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/MeKo-Tech/homography/internal/geometry"
	"github.com/MeKo-Tech/homography/internal/homography"
)

// ErrDegenerateQuad is returned when the source quadrilateral does not
// admit a homography (collinear or coincident corners).
var ErrDegenerateQuad = errors.New("warp: degenerate source quadrilateral")

// Perspective warps the quadrilateral quad of src into a dstW x dstH
// rectangle. quad corners are given clockwise starting at the corner
// mapping to (0,0). Samples outside the source bounds are black.
func Perspective(src image.Image, quad [4]geometry.Point[float64], dstW, dstH int) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.New("warp: nil source image")
	}
	if dstW <= 0 || dstH <= 0 {
		return nil, errors.New("warp: non-positive output dimensions")
	}

	// Homography from the destination rectangle onto the source quad,
	// so each output pixel pulls its color from the source.
	rect := [4]geometry.Point[float64]{
		{X: 0, Y: 0},
		{X: float64(dstW - 1), Y: 0},
		{X: float64(dstW - 1), Y: float64(dstH - 1)},
		{X: 0, Y: float64(dstH - 1)},
	}
	h, ok := homography.ExactQuad(rect, quad)
	if !ok {
		return nil, ErrDegenerateQuad
	}

	// Clone to NRGBA for direct pixel access regardless of the source
	// color model.
	in := imaging.Clone(src)
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			p, ok := h.Apply(geometry.Point[float64]{X: float64(x), Y: float64(y)})
			if !ok {
				continue
			}
			r, g, b, a := sampleBilinear(in, p.X, p.Y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = a
		}
	}
	return out, nil
}

// sampleBilinear interpolates the NRGBA image at (x, y). Coordinates
// beyond the pixel footprint of the image sample as opaque black;
// coordinates within half a pixel of the border clamp to the edge.
func sampleBilinear(img *image.NRGBA, x, y float64) (r, g, b, a uint8) {
	bounds := img.Bounds()
	maxX := float64(bounds.Dx() - 1)
	maxY := float64(bounds.Dy() - 1)
	if x < -0.5 || y < -0.5 || x > maxX+0.5 || y > maxY+0.5 {
		return 0, 0, 0, 255
	}
	x = min(max(x, 0), maxX)
	y = min(max(y, 0), maxY)

	x0, y0 := int(x), int(y)
	x1, y1 := x0+1, y0+1
	if x1 > bounds.Dx()-1 {
		x1 = x0
	}
	if y1 > bounds.Dy()-1 {
		y1 = y0
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	i00 := img.PixOffset(x0, y0)
	i10 := img.PixOffset(x1, y0)
	i01 := img.PixOffset(x0, y1)
	i11 := img.PixOffset(x1, y1)

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := lerp(float64(img.Pix[i00+c]), float64(img.Pix[i10+c]), fx)
		bot := lerp(float64(img.Pix[i01+c]), float64(img.Pix[i11+c]), fx)
		out[c] = uint8(lerp(top, bot, fy) + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
