package bpr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"io/fs"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

// Resize writes the full size and thumbnail variants of the photo at path.
// The thumbnail is scaled down from the full size image, not from the source photo.
func Resize(c *Config, path string) (*Image, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageProcessingError{File: name, Err: err}
	}
	defer f.Close()

	img, err := c.Codec.Decode(f)
	if err != nil {
		return nil, &ImageProcessingError{File: name, Err: err}
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &ImageProcessingError{File: name, Err: fmt.Errorf("empty image: %+v", b)}
	}

	i := NewImage(path, b.Dx(), b.Dy())
	klog.V(1).Infof("%s is %dx%d (%s): full=%s thumb=%s", name, b.Dx(), b.Dy(), i.Orientation, i.Full, i.Thumb)

	img = c.Codec.Resize(img, i.Full.Width, i.Full.Height)
	if err := save(c, img, filepath.Join(c.OutDir, name), FullQuality); err != nil {
		return nil, err
	}

	img = c.Codec.Resize(img, i.Thumb.Width, i.Thumb.Height)
	if err := save(c, img, filepath.Join(c.OutDir, ThumbDir, name), ThumbQuality); err != nil {
		return nil, err
	}

	return i, nil
}

// Inspect resolves the output sizes for the photo at path by reading only its header.
func Inspect(path string) (*Image, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageProcessingError{File: name, Err: err}
	}
	defer f.Close()

	ic, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &ImageProcessingError{File: name, Err: fmt.Errorf("unable to decode: %w", err)}
	}

	return NewImage(path, ic.Width, ic.Height), nil
}

func save(c *Config, img image.Image, path string, quality int) error {
	var buf bytes.Buffer
	if err := c.Codec.EncodeJPEG(&buf, img, quality); err != nil {
		return &ImageProcessingError{File: filepath.Base(path), Err: err}
	}

	if err := writeNew(path, buf.Bytes()); err != nil {
		return err
	}

	klog.V(1).Infof("wrote %s (%d bytes, q=%d)", path, buf.Len(), quality)
	return nil
}

// writeNew writes bs to path, failing if path already exists.
func writeNew(path string, bs []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputFileConflict, path)
		}
		return fmt.Errorf("create: %w", err)
	}

	if _, err := f.Write(bs); err != nil {
		f.Close()
		return fmt.Errorf("write: %w", err)
	}
	return f.Close()
}
