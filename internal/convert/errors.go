package convert

import "errors"

// Precondition errors, returned before anything is read or written
var (
	ErrNoFiles     = errors.New("no files were selected")
	ErrNoOutputDir = errors.New("output directory was not specified")
	ErrFileExists  = errors.New("file already exists")
	ErrTooFewPDFs  = errors.New("select more than one PDF file")
	ErrUnsupported = errors.New("unsupported file type")
)

// Errors raised while converting
var (
	ErrImageRead   = errors.New("failed to read image")
	ErrMergeFailed = errors.New("failed to merge PDF files")
	ErrWriteFailed = errors.New("failed to write output")
)

// IsPrecondition reports whether err was raised before any I/O took place
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrNoOutputDir) ||
		errors.Is(err, ErrFileExists) ||
		errors.Is(err, ErrTooFewPDFs) ||
		errors.Is(err, ErrUnsupported)
}
