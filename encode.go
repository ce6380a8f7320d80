package recolor

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"sort"

	"golang.org/x/image/draw"
)

const (
	FrameRate = 30
	// GIF delays are in hundredths of a second.
	frameDelay = 100 / FrameRate

	paletteSize = 256
	// Low bits dropped from each channel when counting palette colors.
	quantShift = 3
	// Pixels less opaque than this map to the transparent palette entry.
	opaqueMin = 0x80
)

// EncodeFile writes anim to path as a looping GIF. See Encode.
func EncodeFile(path string, anim Animation) (err error) {
	if len(anim) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, anim)
}

// Encode writes every frame of anim, in order, as one GIF that loops forever
// at FrameRate frames per second. Frames share a palette built from the most
// common colors of the whole animation, and each pixel takes the nearest
// palette entry without dithering.
func Encode(w io.Writer, anim Animation) error {
	if len(anim) == 0 {
		return ErrNoFrames
	}
	pal := buildPalette(anim)

	giff := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(anim)),
		Delay:     make([]int, 0, len(anim)),
		LoopCount: 0,
	}
	for _, frame := range anim {
		paletted := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(paletted, paletted.Bounds(), frame, frame.Bounds().Min, draw.Src)
		giff.Image = append(giff.Image, paletted)
		giff.Delay = append(giff.Delay, frameDelay)
	}
	if err := gif.EncodeAll(w, giff); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

func quantize(px color.NRGBA) color.NRGBA {
	const mask = 0xff << quantShift & 0xff
	return color.NRGBA{R: px.R & mask, G: px.G & mask, B: px.B & mask, A: px.A}
}

// buildPalette returns a transparent entry followed by the most frequent
// opaque colors, most frequent first. Colors are counted in quantized buckets
// and each bucket is represented by the first color seen in it.
func buildPalette(anim Animation) color.Palette {
	type bucket struct {
		c     color.NRGBA
		count int
	}
	buckets := make(map[color.NRGBA]*bucket)
	for _, frame := range anim {
		for i := 0; i+3 < len(frame.Pix); i += 4 {
			px := color.NRGBA{R: frame.Pix[i], G: frame.Pix[i+1], B: frame.Pix[i+2], A: 0xff}
			if frame.Pix[i+3] < opaqueMin {
				continue
			}
			key := quantize(px)
			b, ok := buckets[key]
			if !ok {
				b = &bucket{c: px}
				buckets[key] = b
			}
			b.count++
		}
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return packed(sorted[i].c) < packed(sorted[j].c)
	})

	pal := color.Palette{color.Transparent}
	for _, b := range sorted {
		if len(pal) == paletteSize {
			break
		}
		pal = append(pal, b.c)
	}
	return pal
}

func packed(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
