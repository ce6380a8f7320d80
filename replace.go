package recolor

import "image"

// The zone split and channel thresholds are tuned to the color bands of one
// source image.
const (
	ZoneSplitRow   = 133 // first row of zone B
	ZoneABlueMin   = 210 // zone A keeps a pixel whose blue exceeds this
	ZoneBGreenMin  = 170 // zone B keeps a pixel whose green exceeds this
	channelsPerPix = 4
)

/*
ReplaceColors recolors every pixel of every frame to either a or b.

Rows above ZoneSplitRow test the blue channel against ZoneABlueMin, the rest
test the green channel against ZoneBGreenMin. A pixel that passes takes a for
as many channels as a has and keeps its own remaining channels, so a 3-channel
a preserves the source alpha. A pixel that fails becomes b, alpha included.
*/
func ReplaceColors(anim Animation, a, b Color) (Animation, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	fill := b.NRGBA()
	fallback := []uint8{fill.R, fill.G, fill.B, fill.A}

	out := make(Animation, 0, len(anim))
	for _, src := range anim {
		out = append(out, replaceFrame(src, a, fallback))
	}
	return out, nil
}

func replaceFrame(src *image.NRGBA, a Color, fallback []uint8) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := y - bounds.Min.Y
		channel, threshold := 2, uint8(ZoneABlueMin)
		if row >= ZoneSplitRow {
			channel, threshold = 1, uint8(ZoneBGreenMin)
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x-bounds.Min.X, row)
			px := dst.Pix[di : di+channelsPerPix]
			if src.Pix[si+channel] > threshold {
				copy(px, src.Pix[si:si+channelsPerPix])
				copy(px, a)
			} else {
				copy(px, fallback)
			}
		}
	}
	return dst
}
