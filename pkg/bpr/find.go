package bpr

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

var jpegExt = ".jpg"

// Find returns the *.jpg files directly inside root, sorted by path.
func Find(root string) ([]string, error) {
	des, err := godirwalk.ReadDirents(root, nil)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	found := []string{}
	for _, de := range des {
		if !strings.EqualFold(filepath.Ext(de.Name()), jpegExt) {
			continue
		}

		path := filepath.Join(root, de.Name())
		if de.IsDir() {
			klog.V(1).Infof("skipping directory %s", path)
			continue
		}

		if de.IsSymlink() {
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				klog.Warningf("skipping %s: not a regular file", path)
				continue
			}
		} else if !de.IsRegular() {
			continue
		}

		klog.V(1).Infof("found %s", path)
		found = append(found, path)
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w in the directory: %s", ErrNoImagesFound, root)
	}

	sort.Strings(found)
	return found, nil
}
