package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/ytget/pdf-maker/internal/model"
)

// FitWithin returns the size an image of w x h gets when its larger side is
// limited to maxDim, preserving the aspect ratio. The bool is false when no
// scaling is needed.
func FitWithin(w, h, maxDim int) (int, int, bool) {
	if maxDim <= 0 || w <= 0 || h <= 0 || (w <= maxDim && h <= maxDim) {
		return w, h, false
	}
	ratio := float64(w) / float64(h)
	var nw, nh int
	if ratio > 1 {
		nw, nh = maxDim, int(math.Round(float64(maxDim)/ratio))
	} else {
		nw, nh = int(math.Round(float64(maxDim)*ratio)), maxDim
	}
	return max(nw, 1), max(nh, 1), true
}

// preparePage scales img down to maxDim (0 disables scaling) and flattens it
// onto a white background
func preparePage(img image.Image, maxDim int) *image.RGBA {
	src := img.Bounds()
	w, h, scale := FitWithin(src.Dx(), src.Dy(), maxDim)

	page := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(page, page.Bounds(), image.White, image.Point{}, draw.Src)
	if scale {
		draw.CatmullRom.Scale(page, page.Bounds(), img, src, draw.Over, nil)
	} else {
		draw.Draw(page, page.Bounds(), img, src.Min, draw.Over)
	}
	return page
}

// loadPage decodes one image file and returns it JPEG-encoded, ready for import
func (s *Service) loadPage(path string, optimize bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	maxDim := 0
	if optimize {
		maxDim = s.maxDimension
	}
	page := preparePage(img, maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, page, &jpeg.Options{Quality: s.jpegQuality}); err != nil {
		return nil, err
	}

	log.Printf("Prepared page from %s (%s %dx%d -> %dx%d)", filepath.Base(path), format,
		img.Bounds().Dx(), img.Bounds().Dy(), page.Bounds().Dx(), page.Bounds().Dy())
	return buf.Bytes(), nil
}

// imagesToPDF converts every input into one page. A single unreadable input
// aborts the run before anything is written.
func (s *Service) imagesToPDF(ctx context.Context, job *model.ConversionJob, optimize bool) error {
	pages := make([]io.Reader, 0, len(job.Inputs))
	for i, path := range job.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := s.loadPage(path, optimize)
		if err != nil {
			log.Printf("Failed to read image %s: %v", path, err)
			return fmt.Errorf("%w: %s: %v", ErrImageRead, filepath.Base(path), err)
		}
		pages = append(pages, bytes.NewReader(data))

		s.reportProgress(job, i+1, len(job.Inputs))
	}

	imp := pdfcpu.DefaultImportConfig()
	imp.Pos = types.Full

	return writeAtomically(job.OutputPath, func(w io.Writer) error {
		if err := api.ImportImages(nil, w, pages, imp, s.pdfConf); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		return nil
	})
}
