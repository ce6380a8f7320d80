package recolor

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Crop", func() {
	It("cuts every frame to the same rectangle", func() {
		anim := solidAnimation(4, 300, 300, black)
		for _, frame := range anim {
			frame.SetNRGBA(CropX, CropY, white)
			frame.SetNRGBA(CropX+CropWidth-1, CropY+CropHeight-1, white)
		}
		out := Crop(anim, CropX, CropY, CropWidth, CropHeight)
		Expect(out).To(HaveLen(4))
		for _, frame := range out {
			Expect(frame.Bounds()).To(Equal(image.Rect(0, 0, CropWidth, CropHeight)))
			Expect(frame.NRGBAAt(0, 0)).To(Equal(white))
			Expect(frame.NRGBAAt(CropWidth-1, CropHeight-1)).To(Equal(white))
			Expect(frame.NRGBAAt(1, 0)).To(Equal(black))
		}
	})

	It("keeps the whole frame for a full-size rectangle", func() {
		anim := solidAnimation(3, 20, 20, color.NRGBA{1, 2, 3, 4})
		out := Crop(anim, 0, 0, 20, 20)
		for i := range out {
			Expect(out[i].Pix).To(Equal(anim[i].Pix))
		}
	})
})
