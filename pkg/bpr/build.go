package bpr

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Result describes a completed build.
type Result struct {
	Images     []*Image
	MarkupPath string
}

// Build resizes every photo in c.InDir and writes the gallery markup.
// Photos are processed one at a time in path order; the first failure aborts the build.
func Build(c *Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	klog.Infof("build: %s -> %s (gallery=%q, html only=%v)", c.InDir, c.OutDir, c.GalleryName, c.HTMLOnly)

	if err := Prepare(c); err != nil {
		return nil, err
	}

	paths, err := Find(c.InDir)
	if err != nil {
		return nil, err
	}

	klog.Infof("Found %d images...", len(paths))

	m := &Markup{GalleryName: c.GalleryName}
	for n, p := range paths {
		var i *Image
		if c.HTMLOnly {
			i, err = Inspect(p)
		} else {
			klog.Infof("Processing %d of %d: %s", n+1, len(paths), p)
			i, err = Resize(c, p)
		}
		if err != nil {
			return nil, err
		}
		m.Add(i)
	}

	mp, err := WriteMarkup(c.OutDir, m)
	if err != nil {
		return nil, fmt.Errorf("write markup: %w", err)
	}

	return &Result{Images: m.Images, MarkupPath: mp}, nil
}
