// bpr resizes a directory of photos into a blog gallery with thumbnails and HTML markup.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"k8s.io/klog/v2"

	"github.com/tstromberg/bpr/pkg/bpr"
	"github.com/tstromberg/bpr/pkg/codec"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	defer klog.Flush()

	fs := flag.NewFlagSet("bpr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	klog.InitFlags(fs)
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 0
	}

	if cmd := fs.Arg(0); cmd != "resize" {
		fmt.Fprintf(stderr, "ERROR: unknown command %q\n\n", cmd)
		fs.Usage()
		return 1
	}

	c, err := parseResize(fs.Args()[1:], stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n\n", err)
		resizeUsage(stderr)
		return 1
	}

	klog.Infof("Performing image resize...")
	klog.Infof("Input directory: %s", c.InDir)
	klog.Infof("Output directory: %s", c.OutDir)

	r, err := bpr.Build(c)
	if err != nil {
		klog.Errorf("resize failed: %v", err)
		return 1
	}

	klog.Infof("Wrote %d images to %s", len(r.Images), r.MarkupPath)
	klog.Infof("Operation completed.")
	return 0
}

// parseResize parses the arguments of the resize command. Flags may come before or after the path.
func parseResize(args []string, out io.Writer) (*bpr.Config, error) {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { resizeUsage(out) }

	var force, htmlOnly bool
	var gallery, codecName string
	fs.BoolVar(&force, "f", false, "")
	fs.BoolVar(&force, "force", false, "")
	fs.StringVar(&gallery, "gn", bpr.DefaultGalleryName, "")
	fs.StringVar(&gallery, "gallery-name", bpr.DefaultGalleryName, "")
	fs.BoolVar(&htmlOnly, "html", false, "")
	fs.BoolVar(&htmlOnly, "generate-html-only", false, "")
	fs.StringVar(&codecName, "codec", codec.DefaultName, "")

	paths := []string{}
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		paths = append(paths, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(paths) == 0 || paths[0] == "" {
		return nil, errors.New("an input path must be provided")
	}
	if len(paths) > 1 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(paths[1:], " "))
	}

	cd, err := codec.ByName(codecName)
	if err != nil {
		return nil, err
	}

	return &bpr.Config{
		InDir:       paths[0],
		OutDir:      bpr.OutDirFor(paths[0]),
		GalleryName: gallery,
		Codec:       cd,
		Force:       force,
		HTMLOnly:    htmlOnly,
	}, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: bpr [logging flags] <command>\n\nCommands:\n")
	fmt.Fprintf(w, "  resize    Resizes images in the given directory, creates thumbnails, and emits HTML markup.\n\n")
	fmt.Fprintf(w, "Logging flags:\n")
	fs.PrintDefaults()
}

func resizeUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: bpr resize <path> [options]

  <path>                          Directory containing images to resize; a directory named
                                  'output' will be created as a subdirectory here as well.

Options:
  -f, --force                     Overwrites the output directory if it already exists.
  -gn, --gallery-name NAME        The name of the gallery; used for the absolute path in the markup.
                                  (default %q)
  -html, --generate-html-only     Skip image generation and only emit the HTML file.
  --codec NAME                    Image codec to resize with: %s (default %q)
`, bpr.DefaultGalleryName, strings.Join(codec.Names(), ", "), codec.DefaultName)
}
