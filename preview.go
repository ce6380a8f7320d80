package recolor

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

// braille is a 2x4 cell of dots indexed [x][y]. Unicode numbers the dots
// down the left column, then down the right, with the bottom row last, and
// packs them low bit first above U+2800.
type braille [2][4]int

var dotOrder = [8][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {0, 3}, {1, 3}}

func (b braille) Rune() rune {
	var v rune
	for bit, dot := range dotOrder {
		if b[dot[0]][dot[1]] != 0 {
			v |= 1 << uint(bit)
		}
	}
	return '\u2800' + v
}

var previewPalette = []color.Color{color.Black, color.White, color.Transparent}

/*
Preview draws img to w as lines of braille symbols, one symbol per 2x4 pixel
cell, with a dot for every pixel that dithers to black. It stands in for a
plot window when checking a frame from a terminal.
*/
func Preview(w io.Writer, img image.Image) error {
	// Redraw with floyd steinberg diffusion so shaded regions survive the
	// monochrome palette.
	paletted := image.NewPaletted(img.Bounds(), previewPalette)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)

	bounds := paletted.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		line := make([]rune, 0, bounds.Dx()/2+1)
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b braille
			// Draw left-right, top-bottom.
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					if paletted.ColorIndexAt(px+x, py+y) == 0 {
						b[x][y] = 1
					}
				}
			}
			line = append(line, b.Rune())
		}
		line = append(line, '\n')
		if _, err := w.Write([]byte(string(line))); err != nil {
			return err
		}
	}
	return nil
}
