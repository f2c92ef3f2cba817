package bpr

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpSortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

// writeJPEG writes a w x h gradient JPEG to path.
func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), 200, 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

// jpegSize returns the pixel size of the JPEG at path.
func jpegSize(t *testing.T, path string) Dimensions {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	ic, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config %s: %v", path, err)
	}
	return Dimensions{ic.Width, ic.Height}
}

// tree returns the relative path and content of every file under root.
func tree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			files[rel+"/"] = ""
			return nil
		}
		bs, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[rel] = string(bs)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return files
}

type resizeCall struct {
	From image.Point
	To   image.Point
}

// fakeCodec decodes real JPEGs but resizes to blank canvases.
type fakeCodec struct {
	resizes   []resizeCall
	qualities []int
}

func (c *fakeCodec) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

func (c *fakeCodec) Resize(img image.Image, width, height int) image.Image {
	c.resizes = append(c.resizes, resizeCall{From: img.Bounds().Size(), To: image.Pt(width, height)})
	return image.NewGray(image.Rect(0, 0, width, height))
}

func (c *fakeCodec) EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	c.qualities = append(c.qualities, quality)
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}
