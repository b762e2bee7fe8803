package convert

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	domain "github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/platform"
)

// Conversion constants
const (
	// Share of the progress bar reserved for reading inputs; the rest covers the write
	ReadProgressShare = 95

	JobIDPrefix = "convert-"
)

// Defaults used when the service is created without settings
const (
	DefaultMaxDimension = 2000
	DefaultJPEGQuality  = 90
)

// Request describes one conversion
type Request struct {
	Inputs        []string // ordered paths; the first one decides the conversion path
	OutputDir     string
	UseCustomName bool
	CustomName    string
	Optimize      bool // downscale images larger than the max dimension
}

// Service converts images to PDF and merges PDFs
type Service struct {
	maxDimension int
	jpegQuality  int
	pdfConf      *model.Configuration
	now          func() time.Time
	onUpdate     func(*domain.ConversionJob) // callback for UI updates
}

// NewService creates a new conversion service
func NewService(maxDimension, jpegQuality int) *Service {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	s := &Service{
		pdfConf: conf,
		now:     time.Now,
	}
	s.SetMaxDimension(maxDimension)
	s.SetJPEGQuality(jpegQuality)
	return s
}

// SetUpdateCallback sets the callback function for job updates.
// The callback receives a copy of the job.
func (s *Service) SetUpdateCallback(callback func(*domain.ConversionJob)) {
	s.onUpdate = callback
}

// SetMaxDimension sets the largest side kept when optimizing
func (s *Service) SetMaxDimension(pixels int) {
	if pixels <= 0 {
		pixels = DefaultMaxDimension
	}
	s.maxDimension = pixels
}

// SetJPEGQuality sets the quality pages are embedded with
func (s *Service) SetJPEGQuality(quality int) {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	s.jpegQuality = quality
}

// Validate checks the request and returns the output path.
// Only the custom-name collision check touches the filesystem.
func (s *Service) Validate(req Request) (string, error) {
	if len(req.Inputs) == 0 {
		return "", ErrNoFiles
	}
	if req.OutputDir == "" {
		return "", ErrNoOutputDir
	}

	outputPath := filepath.Join(req.OutputDir, OutputName(req.UseCustomName, req.CustomName, s.now()))
	if req.UseCustomName && strings.TrimSpace(req.CustomName) != "" {
		if platform.FileExists(outputPath) {
			return "", fmt.Errorf("%w: %s", ErrFileExists, filepath.Base(outputPath))
		}
	}

	switch domain.KindOf(req.Inputs[0]) {
	case domain.KindPDF:
		if len(req.Inputs) < 2 {
			return "", ErrTooFewPDFs
		}
	case domain.KindImage:
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(req.Inputs[0]))
	}

	return outputPath, nil
}

// Convert validates the request and produces the output synchronously.
// Precondition failures return a nil job. Once started, the job is returned
// together with any error so callers can show its final state.
func (s *Service) Convert(ctx context.Context, req Request) (*domain.ConversionJob, error) {
	outputPath, err := s.Validate(req)
	if err != nil {
		log.Printf("Conversion rejected: %v", err)
		return nil, err
	}

	job := &domain.ConversionJob{
		ID:         domain.GenerateID(JobIDPrefix),
		Kind:       domain.KindOf(req.Inputs[0]),
		Inputs:     append([]string(nil), req.Inputs...),
		OutputPath: outputPath,
		Status:     domain.StateConverting,
		StartedAt:  s.now(),
	}
	log.Printf("Conversion started: ID=%s kind=%s inputs=%d output=%s", job.ID, job.Kind, len(job.Inputs), job.OutputPath)
	s.notifyUpdate(job)

	if job.Kind == domain.KindPDF {
		err = s.mergePDFs(ctx, job)
	} else {
		err = s.imagesToPDF(ctx, job, req.Optimize)
	}

	job.FinishedAt = s.now()
	if err != nil {
		job.Status = domain.StateFailed
		job.LastError = err.Error()
		job.SetProgress(0)
		log.Printf("Conversion failed: ID=%s: %v", job.ID, err)
		s.notifyUpdate(job)
		return job, err
	}

	job.Status = domain.StateSucceeded
	job.SetProgress(100)
	log.Printf("Conversion completed: ID=%s in %v", job.ID, job.Duration())
	s.notifyUpdate(job)
	return job, nil
}

// reportProgress maps done/total inputs onto the read share of the bar
func (s *Service) reportProgress(job *domain.ConversionJob, done, total int) {
	job.SetProgress(int(float64(done) / float64(total) * ReadProgressShare))
	s.notifyUpdate(job)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *domain.ConversionJob) {
	if s.onUpdate != nil {
		snapshot := *job
		s.onUpdate(&snapshot)
	}
}
