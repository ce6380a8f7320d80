package recolor

import (
	"image"

	"github.com/disintegration/imaging"
)

// Crop cuts every frame down to the rectangle of the given size whose top
// left corner is (x, y). A rectangle reaching past a frame is clipped to it.
func Crop(anim Animation, x, y, width, height int) Animation {
	rect := image.Rect(x, y, x+width, y+height)
	out := make(Animation, 0, len(anim))
	for _, frame := range anim {
		out = append(out, imaging.Crop(frame, rect))
	}
	return out
}
