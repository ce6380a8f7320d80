package recolor

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var (
	black       = color.NRGBA{0, 0, 0, 255}
	white       = color.NRGBA{255, 255, 255, 255}
	transparent = color.NRGBA{}
	bwPal       = color.Palette{color.Black, color.White}
	bwtPal      = color.Palette{color.Black, color.White, color.Transparent}
)

var _ = Describe("Extract", func() {
	It("yields one frame per stored image at the declared size", func() {
		frames, err := Extract(bytes.NewReader(gifFixture(3, 20, 10, bwPal)))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(3))
		for _, frame := range frames {
			Expect(frame.Bounds()).To(Equal(image.Rect(0, 0, 20, 10)))
		}
		Expect(frames[0].NRGBAAt(5, 5)).To(Equal(black))
		Expect(frames[1].NRGBAAt(5, 5)).To(Equal(white))
		Expect(frames[2].NRGBAAt(19, 9)).To(Equal(black))
	})

	Describe("disposal", func() {
		var giff *gif.GIF

		BeforeEach(func() {
			full := image.NewPaletted(image.Rect(0, 0, 10, 10), bwtPal)
			for i := range full.Pix {
				full.Pix[i] = 1
			}
			patch := image.NewPaletted(image.Rect(0, 0, 4, 4), bwtPal)
			patch.Pix[0] = 2
			giff = &gif.GIF{
				Image:  []*image.Paletted{full, patch, patch},
				Delay:  []int{0, 0, 0},
				Config: image.Config{Width: 10, Height: 10, ColorModel: bwtPal},
			}
		})

		extract := func() Animation {
			var buf bytes.Buffer
			Expect(gif.EncodeAll(&buf, giff)).To(Succeed())
			frames, err := Extract(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(3))
			return frames
		}

		It("draws each image over the previous one", func() {
			frames := extract()
			Expect(frames[1].NRGBAAt(0, 0)).To(Equal(white))
			Expect(frames[1].NRGBAAt(1, 1)).To(Equal(black))
			Expect(frames[1].NRGBAAt(8, 8)).To(Equal(white))
		})

		It("clears the area of an image disposed to background", func() {
			giff.Disposal = []byte{gif.DisposalBackground, gif.DisposalNone, gif.DisposalNone}
			frames := extract()
			Expect(frames[0].NRGBAAt(8, 8)).To(Equal(white))
			Expect(frames[1].NRGBAAt(8, 8)).To(Equal(transparent))
			Expect(frames[1].NRGBAAt(1, 1)).To(Equal(black))
		})

		It("restores the canvas after an image disposed to previous", func() {
			second := image.NewPaletted(image.Rect(6, 6, 10, 10), bwtPal)
			for i := range second.Pix {
				second.Pix[i] = 2
			}
			giff.Image[2] = second
			giff.Disposal = []byte{gif.DisposalNone, gif.DisposalPrevious, gif.DisposalNone}
			frames := extract()
			Expect(frames[1].NRGBAAt(1, 1)).To(Equal(black))
			Expect(frames[2].NRGBAAt(1, 1)).To(Equal(white))
		})
	})

	It("returns a still image as a single frame", func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, solidFrame(4, 3, white))).To(Succeed())
		frames, err := Extract(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].Bounds()).To(Equal(image.Rect(0, 0, 4, 3)))
		Expect(frames[0].NRGBAAt(3, 2)).To(Equal(white))
	})

	It("fails on data that is not an image", func() {
		_, err := Extract(bytes.NewReader([]byte("not an image")))
		Expect(err).To(HaveOccurred())
	})

	It("reads from a file", func() {
		dir, err := ioutil.TempDir("", "recolor")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "in.gif")
		Expect(ioutil.WriteFile(path, gifFixture(2, 5, 5, bwPal), 0644)).To(Succeed())
		frames, err := ExtractFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))

		_, err = ExtractFile(filepath.Join(dir, "missing.gif"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
