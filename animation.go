package recolor

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrNoFrames is returned when an animation with no frames is encoded.
	ErrNoFrames = errors.New("recolor: animation has no frames")
	// ErrColorChannels is returned for a Color that is neither RGB nor RGBA.
	ErrColorChannels = errors.New("recolor: color must have 3 or 4 channels")
)

// Animation is an ordered sequence of frames that all share the same size.
// Stages never modify the frames they are given.
type Animation []*image.NRGBA

// Bounds returns the bounds of the first frame, or the empty rectangle.
func (anim Animation) Bounds() image.Rectangle {
	if len(anim) == 0 {
		return image.Rectangle{}
	}
	return anim[0].Bounds()
}

// Color is a replacement color given as RGB or RGBA channel values.
type Color []uint8

func (c Color) validate() error {
	if len(c) != 3 && len(c) != 4 {
		return ErrColorChannels
	}
	return nil
}

// NRGBA returns c as a full pixel. An RGB color is opaque.
func (c Color) NRGBA() color.NRGBA {
	px := color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
	if len(c) == 4 {
		px.A = c[3]
	}
	return px
}

// DropLeading returns the frames that follow the first n.
func DropLeading(anim Animation, n int) Animation {
	if n < 0 {
		n = 0
	}
	if n >= len(anim) {
		return Animation{}
	}
	out := make(Animation, 0, len(anim)-n)
	for _, frame := range anim[n:] {
		out = append(out, imaging.Clone(frame))
	}
	return out
}
