package bpr

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

// Prepare checks the input directory and readies a clean output tree.
// In HTML-only mode the output tree is left as it is.
func Prepare(c *Config) error {
	if !isDir(c.InDir) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, c.InDir)
	}

	if c.HTMLOnly {
		klog.V(1).Infof("html only: leaving %s as is", c.OutDir)
		return nil
	}

	_, err := os.Stat(c.OutDir)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat: %w", err)
	}

	if exists {
		if !c.Force {
			return fmt.Errorf("%w: %s", ErrOutputAlreadyExists, c.OutDir)
		}
		klog.Infof("removing existing output directory %s", c.OutDir)
		if err := os.RemoveAll(c.OutDir); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Join(c.OutDir, ThumbDir), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
