// Package bpr resizes a directory of JPEG photos into a blog gallery.
package bpr

import (
	"errors"
	"path/filepath"

	"github.com/tstromberg/bpr/pkg/codec"
)

// DefaultGalleryName is used in URLs when no gallery name is given.
var DefaultGalleryName = "new-gallery"

// ThumbDir is the name of the thumbnail subdirectory within the output directory.
var ThumbDir = "thumbnails"

// MarkupFile is the name of the HTML fragment within the output directory.
var MarkupFile = "markup.html"

// Config holds configuration for a single gallery build.
type Config struct {
	InDir       string
	OutDir      string
	GalleryName string
	Codec       codec.Codec
	Force       bool
	HTMLOnly    bool
}

// OutDirFor returns the output directory used for an input directory.
func OutDirFor(inDir string) string {
	return filepath.Join(inDir, "output")
}

// Validate checks that c is usable. It does not touch the filesystem.
// An empty GalleryName is allowed and yields URLs like /content/images/galleries//a.jpg.
func (c *Config) Validate() error {
	if c.InDir == "" {
		return errors.New("an input path must be provided")
	}
	if c.OutDir == "" {
		return errors.New("an output path must be provided")
	}
	if c.Codec == nil && !c.HTMLOnly {
		return errors.New("a codec is required unless generating HTML only")
	}
	return nil
}
