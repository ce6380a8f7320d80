package recolor

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ExtractFile opens path and extracts its frames. See Extract.
func ExtractFile(path string) (Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Extract(f)
}

/*
Extract decodes an animated GIF into one RGBA frame per stored image, in
storage order. Each frame is the full logical screen as it looks once that
image has been drawn, so disposal methods are respected:

	none/unspecified: the next image is drawn over what is already there
	background:       the image's area is cleared to transparent afterwards
	previous:         the canvas is restored to how it was before the image

Still images in any other registered format (png, jpeg, bmp) are returned as
a single frame.
*/
func Extract(r io.Reader) (Animation, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}
	if format != "gif" {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", format, err)
		}
		return Animation{imaging.Clone(img)}, nil
	}

	giff, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding gif: %w", err)
	}
	return composite(giff), nil
}

func composite(giff *gif.GIF) Animation {
	screen := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if screen.Empty() && len(giff.Image) > 0 {
		corner := giff.Image[0].Bounds().Max
		screen = image.Rect(0, 0, corner.X, corner.Y)
	}
	canvas := image.NewNRGBA(screen)

	frames := make(Animation, 0, len(giff.Image))
	for i, img := range giff.Image {
		var disposal byte
		if i < len(giff.Disposal) {
			disposal = giff.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		draw.Draw(canvas, img.Bounds(), img, img.Bounds().Min, draw.Over)
		frames = append(frames, imaging.Clone(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames
}
