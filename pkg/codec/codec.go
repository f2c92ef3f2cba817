// Package codec provides the image decode, resize, and JPEG encode primitives used by bpr.
package codec

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sort"
)

// ErrUnknownCodec is returned by ByName for names that are not registered.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec decodes, resizes and encodes images.
type Codec interface {
	// Decode decodes an image from r.
	Decode(r io.Reader) (image.Image, error)
	// Resize scales img to exactly width x height. The aspect ratio is not preserved.
	Resize(img image.Image, width, height int) image.Image
	// EncodeJPEG writes img to w as a JPEG of the given quality (1-100).
	EncodeJPEG(w io.Writer, img image.Image, quality int) error
}

// DefaultName is the codec used when none is requested.
var DefaultName = "bild"

var codecs = map[string]Codec{
	"bild":    Bild{},
	"imaging": Imaging{},
}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCodec, name, Names())
	}
	return c, nil
}

// Names returns the registered codec names, sorted.
func Names() []string {
	ns := []string{}
	for n := range codecs {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}
