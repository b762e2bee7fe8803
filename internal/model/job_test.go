package model

import (
	"testing"
	"time"
)

func TestConversionJob_SetProgress(t *testing.T) {
	tests := []struct {
		percent         int
		expectedPercent int
		expectedFrac    float64
	}{
		{0, 0, 0},
		{47, 47, 0.47},
		{95, 95, 0.95},
		{100, 100, 1},
		{-5, 0, 0},
		{140, 100, 1},
	}

	for _, test := range tests {
		job := &ConversionJob{}
		job.SetProgress(test.percent)
		if job.Percent != test.expectedPercent {
			t.Errorf("SetProgress(%d): Percent = %d, expected %d", test.percent, job.Percent, test.expectedPercent)
		}
		if job.Progress != test.expectedFrac {
			t.Errorf("SetProgress(%d): Progress = %.2f, expected %.2f", test.percent, job.Progress, test.expectedFrac)
		}
	}
}

func TestConversionJob_Duration(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	job := &ConversionJob{StartedAt: start}

	if job.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished job, got %v", job.Duration())
	}

	job.FinishedAt = start.Add(1500 * time.Millisecond)
	if job.Duration() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", job.Duration())
	}
}

func TestConversionJob_OutputDir(t *testing.T) {
	job := &ConversionJob{}
	if job.OutputDir() != "" {
		t.Errorf("Expected empty output dir, got %s", job.OutputDir())
	}

	job.OutputPath = "/out/docs/merged.pdf"
	if job.OutputDir() != "/out/docs" {
		t.Errorf("Expected /out/docs, got %s", job.OutputDir())
	}
}
