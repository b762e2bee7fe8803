package convert

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Output naming constants
const (
	DefaultNamePrefix = "pdf-maker-"
	OutputExtension   = ".pdf"
	TimestampLayout   = "2006-01-02 150405"
	TempFilePattern   = ".pdf-maker-*.tmp"
)

// OutputName returns the file name of the output: the custom name plus .pdf
// when enabled and non-blank, otherwise pdf-maker-<timestamp>.pdf with the
// timestamp down to microseconds.
func OutputName(useCustom bool, customName string, now time.Time) string {
	customName = strings.TrimSpace(customName)
	if useCustom && customName != "" {
		return customName + OutputExtension
	}
	return fmt.Sprintf("%s%s%06d%s", DefaultNamePrefix, now.Format(TimestampLayout), now.Nanosecond()/1000, OutputExtension)
}

// writeAtomically writes through a temporary file in the target directory and
// renames it into place once write succeeds
func writeAtomically(outputPath string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), TempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	log.Printf("Output written: %s", outputPath)
	return nil
}
