package art

import (
	"image"

	"github.com/disintegration/imaging"
)

// Size is the fixed side length every Known art buffer is resized to
// (spec §3.1/§4.E/§8 "500*500*3 = 750000 RGB bytes").
const Size = 500

// BufferLength is the byte length of the RGB8 buffer CropAndResize
// produces.
const BufferLength = Size * Size * 3

// CropAndResize crops img to a centered square (crop anchor 0.5, 0.5) and
// resizes it to Size x Size using nearest-neighbor, then packs the result
// into a tightly-packed RGB8 buffer. Nearest-neighbor is chosen for
// throughput over quality (spec §4.E, §9 open question - not load-
// bearing; a higher-quality filter is a drop-in replacement).
func CropAndResize(img image.Image) []byte {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}

	square := imaging.CropAnchor(img, side, side, imaging.Center)
	resized := imaging.Resize(square, Size, Size, imaging.NearestNeighbor)

	return toRGB8(resized)
}

// toRGB8 strips the alpha channel from an NRGBA image, producing a
// tightly-packed RGB8 buffer of exactly Size*Size*3 bytes.
func toRGB8(img *image.NRGBA) []byte {
	out := make([]byte, 0, BufferLength)
	for y := 0; y < Size; y++ {
		rowStart := y * img.Stride
		for x := 0; x < Size; x++ {
			px := rowStart + x*4
			out = append(out, img.Pix[px], img.Pix[px+1], img.Pix[px+2])
		}
	}
	return out
}
