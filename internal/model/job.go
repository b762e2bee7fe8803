package model

import (
	"path/filepath"
	"time"
)

// ConversionJob represents one run of the converter
type ConversionJob struct {
	ID         string
	Kind       FileKind // kind of the first input, decides image or merge path
	Inputs     []string
	OutputPath string
	Status     SessionState
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// SetProgress stores percent and the matching 0..1 fraction
func (j *ConversionJob) SetProgress(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	j.Percent = percent
	j.Progress = float64(percent) / 100
}

// Duration returns how long the job ran, or zero if it has not finished
func (j *ConversionJob) Duration() time.Duration {
	if j.StartedAt.IsZero() || j.FinishedAt.IsZero() {
		return 0
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// OutputDir returns the directory the output is written to
func (j *ConversionJob) OutputDir() string {
	if j.OutputPath == "" {
		return ""
	}
	return filepath.Dir(j.OutputPath)
}
