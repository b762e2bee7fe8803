package model

import (
	"path/filepath"
	"strings"
)

// FileKind classifies a chosen file by extension
type FileKind string

const (
	KindUnknown FileKind = "unknown"
	KindImage   FileKind = "image"
	KindPDF     FileKind = "pdf"
)

// Extension sets accepted by the file dialogs
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".tif"}
	PDFExtensions   = []string{".pdf"}
)

// String returns the string representation of FileKind
func (k FileKind) String() string {
	return string(k)
}

// Extensions returns the extensions accepted for the kind.
// KindUnknown accepts both classes, which is what the initial choose flow offers.
func (k FileKind) Extensions() []string {
	switch k {
	case KindImage:
		return append([]string(nil), ImageExtensions...)
	case KindPDF:
		return append([]string(nil), PDFExtensions...)
	default:
		exts := make([]string, 0, len(ImageExtensions)+len(PDFExtensions))
		exts = append(exts, ImageExtensions...)
		return append(exts, PDFExtensions...)
	}
}

// KindOf returns the kind of a path based on its lower-cased extension
func KindOf(path string) FileKind {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return KindImage
		}
	}
	for _, e := range PDFExtensions {
		if ext == e {
			return KindPDF
		}
	}
	return KindUnknown
}

// IsSupported reports whether the path is an image or a PDF
func IsSupported(path string) bool {
	return KindOf(path) != KindUnknown
}
