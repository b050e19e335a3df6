// Package art implements component E: decoding arbitrary cover-art bytes
// extracted from audio tags and turning them into a fixed-size, display-
// ready RGB8 buffer (spec §4.E).
package art

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	l "github.com/sirupsen/logrus"
)

var log = l.WithFields(l.Fields{"pkg": "art"})

// ErrInvalidDimensions means the decoded image has zero width or height
// (spec §7 kind 3 PerFile).
var ErrInvalidDimensions = errors.New("art: invalid dimensions")

// ErrDecode means neither the fast path nor the general decoder could
// make sense of the input bytes.
var ErrDecode = errors.New("art: cannot decode image")

// Decode turns raw tag bytes into a canonical image.Image. It first tries
// the stdlib JPEG decoder directly (the overwhelming majority of embedded
// cover art is JPEG, and image/jpeg avoids imaging's general dispatch
// overhead); on any failure it falls back to imaging.Decode, which covers
// PNG/JPEG/BMP/TIFF via golang.org/x/image. A successfully decoded image
// with zero width or height is rejected with ErrInvalidDimensions rather
// than handed to the resizer.
func Decode(raw []byte) (image.Image, error) {
	img, err := decodeFastJPEG(raw)
	if err != nil {
		log.WithError(err).Debug("fast JPEG decode failed, falling back to general decoder")
		img, err = imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
		if err != nil {
			return nil, errors.Wrap(ErrDecode, err.Error())
		}
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrInvalidDimensions
	}
	return img, nil
}

// decodeFastJPEG decodes with the stdlib JPEG decoder and forces the
// result into image.RGBA, since image/jpeg normally returns *image.YCbCr
// which the resize/crop path would otherwise have to convert implicitly
// on every pixel access.
func decodeFastJPEG(raw []byte) (image.Image, error) {
	src, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, src, b.Min, draw.Src)
	return rgba, nil
}
