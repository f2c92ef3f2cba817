package codec

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Imaging is a Codec backed by github.com/disintegration/imaging.
type Imaging struct{}

func (Imaging) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (Imaging) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

func (Imaging) EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
