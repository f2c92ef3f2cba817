package bpr

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"k8s.io/klog/v2"
)

// Names are inserted verbatim; html/template would escape them.
//
//go:embed assets/markup.tmpl
var markupTmpl string

var galleryRoot = "/content/images/galleries"

// Markup accumulates the gallery HTML fragment in processing order.
type Markup struct {
	GalleryName string
	Images      []*Image
}

// Add appends a photo to the fragment.
func (m *Markup) Add(i *Image) {
	m.Images = append(m.Images, i)
}

// Render returns the complete fragment.
func (m *Markup) Render() ([]byte, error) {
	tmpl, err := template.New("markup").Funcs(tmplFunctions(m.GalleryName)).Parse(markupTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var tpl bytes.Buffer
	if err = tmpl.Execute(&tpl, m); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	return tpl.Bytes(), nil
}

// WriteMarkup renders m to the markup file in outDir, replacing any previous one.
func WriteMarkup(outDir string, m *Markup) (string, error) {
	bs, err := m.Render()
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	p := filepath.Join(outDir, MarkupFile)
	klog.V(1).Infof("Writing markup for %d images to %s", len(m.Images), p)
	if err := os.WriteFile(p, bs, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}

// tmplFunctions are functions available to our templates.
func tmplFunctions(gallery string) template.FuncMap {
	return template.FuncMap{
		"FullURL": func(i *Image) string {
			return fmt.Sprintf("%s/%s/%s", galleryRoot, gallery, i.BasePath)
		},
		"ThumbURL": func(i *Image) string {
			return fmt.Sprintf("%s/%s/%s/%s", galleryRoot, gallery, ThumbDir, i.BasePath)
		},
	}
}
