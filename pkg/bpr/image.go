package bpr

import (
	"fmt"
	"path/filepath"
)

// Orientation is the landscape or portrait classification of a photo.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Dimensions is a width and height in pixels.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Profile holds the target sizes for one orientation.
type Profile struct {
	Full  Dimensions
	Thumb Dimensions
}

var profiles = map[Orientation]Profile{
	Landscape: {Full: Dimensions{2048, 1536}, Thumb: Dimensions{160, 120}},
	Portrait:  {Full: Dimensions{1536, 2048}, Thumb: Dimensions{120, 160}},
}

// JPEG quality for each output variant.
const (
	FullQuality  = 70
	ThumbQuality = 80
)

// OrientationOf classifies a photo by its pixel size. Square photos are landscape.
func OrientationOf(width, height int) Orientation {
	if width < height {
		return Portrait
	}
	return Landscape
}

// ProfileFor returns the target sizes for an orientation.
func ProfileFor(o Orientation) Profile {
	return profiles[o]
}

// Image represents one source photo and its resolved output sizes.
type Image struct {
	InPath      string
	BasePath    string
	Orientation Orientation
	Full        Dimensions
	Thumb       Dimensions
}

// NewImage resolves the output sizes for a photo of the given pixel size.
func NewImage(path string, width, height int) *Image {
	o := OrientationOf(width, height)
	p := ProfileFor(o)
	return &Image{
		InPath:      path,
		BasePath:    filepath.Base(path),
		Orientation: o,
		Full:        p.Full,
		Thumb:       p.Thumb,
	}
}
