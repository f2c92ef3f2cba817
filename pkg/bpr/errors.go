package bpr

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound means the input directory does not exist.
	ErrInputNotFound = errors.New("could not locate the input path")
	// ErrOutputAlreadyExists means the output directory exists and Force was not set.
	ErrOutputAlreadyExists = errors.New("the output path already exists; to overwrite, use the --force option")
	// ErrNoImagesFound means the input directory holds no *.jpg files.
	ErrNoImagesFound = errors.New("no *.jpg files found")
	// ErrOutputFileConflict means an image destination was already present.
	ErrOutputFileConflict = errors.New("output file already exists")
)

// ImageProcessingError is returned when a single image cannot be read, decoded or encoded.
type ImageProcessingError struct {
	File string
	Err  error
}

func (e *ImageProcessingError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.File, e.Err)
}

func (e *ImageProcessingError) Unwrap() error { return e.Err }
