package recolor

import (
	"image"
	"math"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	UpscaleFactor  = 5
	UpscaledBlur   = 5 // blur kernel size at the upscaled resolution
	DownscaledBlur = 3 // blur kernel size after scaling back down
)

// Antialias smooths the edges of every frame. See AntialiasFrame.
func Antialias(anim Animation) Animation {
	out := make(Animation, 0, len(anim))
	for _, frame := range anim {
		out = append(out, AntialiasFrame(frame))
	}
	return out
}

/*
AntialiasFrame returns a smoothed copy of frame with the same size:

	1. cubic upscale by UpscaleFactor
	2. Gaussian blur with an UpscaledBlur sized kernel
	3. area-averaging downscale back to the original size
	4. Gaussian blur with a DownscaledBlur sized kernel

Every channel is filtered on its own, alpha included, so a transparent pixel
keeps its color. Borders are clamped and the cubic kernel is nfnt's Bicubic,
so results differ slightly from a reflect-101 / a=-0.75 implementation.
*/
func AntialiasFrame(frame *image.NRGBA) *image.NRGBA {
	rgb, alpha := splitAlpha(frame)
	return mergeAlpha(smooth(rgb), smooth(alpha))
}

func smooth(img *image.NRGBA) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	up := resize.Resize(uint(w*UpscaleFactor), uint(h*UpscaleFactor), img, resize.Bicubic)
	blurred := gaussianBlur(up, UpscaledBlur)
	down := imaging.Resize(blurred, w, h, imaging.Box)
	return gaussianBlur(down, DownscaledBlur)
}

// splitAlpha returns two opaque planes of frame: its color, and its alpha
// copied into every color channel. The resamplers weight color by alpha, so
// they only see opaque input.
func splitAlpha(frame *image.NRGBA) (rgb, alpha *image.NRGBA) {
	bounds := frame.Bounds()
	r := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	rgb, alpha = image.NewNRGBA(r), image.NewNRGBA(r)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			si := frame.PixOffset(x, y)
			di := rgb.PixOffset(x-bounds.Min.X, y-bounds.Min.Y)
			a := frame.Pix[si+3]
			copy(rgb.Pix[di:di+3], frame.Pix[si:si+3])
			rgb.Pix[di+3] = 0xff
			alpha.Pix[di], alpha.Pix[di+1], alpha.Pix[di+2], alpha.Pix[di+3] = a, a, a, 0xff
		}
	}
	return rgb, alpha
}

// mergeAlpha takes color from rgb and alpha from the red channel of alpha.
// Both planes are at the origin and the same size.
func mergeAlpha(rgb, alpha *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(rgb.Bounds())
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+3], rgb.Pix[rgb.PixOffset(x, y):])
			dst.Pix[di+3] = alpha.Pix[alpha.PixOffset(x, y)]
		}
	}
	return dst
}

func gaussianBlur(img image.Image, size int) *image.NRGBA {
	g := gift.New(gift.Convolution(gaussianKernel(size), false, true, false, 0))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// Binomial taps used for the small kernels when no sigma is given.
var fixedTaps = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// gaussianTaps returns the normalized 1-D kernel of odd length size, with
// sigma derived from the size.
func gaussianTaps(size int) []float64 {
	if taps, ok := fixedTaps[size]; ok {
		out := make([]float64, len(taps))
		copy(out, taps)
		return out
	}
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	center := float64(size-1) / 2
	taps := make([]float64, size)
	var sum float64
	for i := range taps {
		d := float64(i) - center
		taps[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += taps[i]
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

// gaussianKernel is the row-major size*size outer product of gaussianTaps.
func gaussianKernel(size int) []float32 {
	taps := gaussianTaps(size)
	kernel := make([]float32, 0, size*size)
	for _, ty := range taps {
		for _, tx := range taps {
			kernel = append(kernel, float32(ty*tx))
		}
	}
	return kernel
}
