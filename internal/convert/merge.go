package convert

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ytget/pdf-maker/internal/model"
)

// mergePDFs appends every input document in order into the output
func (s *Service) mergePDFs(ctx context.Context, job *model.ConversionJob) error {
	readers := make([]io.ReadSeeker, 0, len(job.Inputs))
	files := make([]*os.File, 0, len(job.Inputs))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for i, path := range job.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			log.Printf("Failed to open PDF %s: %v", path, err)
			return fmt.Errorf("%w: %s: %v", ErrMergeFailed, filepath.Base(path), err)
		}
		files = append(files, f)
		readers = append(readers, f)

		s.reportProgress(job, i+1, len(job.Inputs))
	}

	return writeAtomically(job.OutputPath, func(w io.Writer) error {
		if err := api.MergeRaw(readers, w, false, s.pdfConf); err != nil {
			return fmt.Errorf("%w: %v", ErrMergeFailed, err)
		}
		return nil
	})
}
