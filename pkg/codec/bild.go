package codec

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Bild is a Codec backed by github.com/anthonynsimon/bild.
type Bild struct{}

// Decode decodes a JPEG image.
func (Bild) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Resize uses a Lanczos filter.
func (Bild) Resize(img image.Image, width, height int) image.Image {
	return transform.Resize(img, width, height, transform.Lanczos)
}

func (Bild) EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if err := imgio.JPEGEncoder(quality)(w, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
