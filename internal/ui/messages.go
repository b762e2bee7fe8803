package ui

import (
	"errors"
	"fmt"

	"github.com/ytget/pdf-maker/internal/convert"
	"github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/selection"
)

// errorMessageKey maps a conversion error to the message shown in the dialog.
// Failures after validation all share one generic message.
func errorMessageKey(err error) string {
	switch {
	case errors.Is(err, convert.ErrNoFiles):
		return KeyNoFiles
	case errors.Is(err, convert.ErrNoOutputDir):
		return KeyNoOutputDir
	case errors.Is(err, convert.ErrFileExists):
		return KeyFileExists
	case errors.Is(err, convert.ErrTooFewPDFs):
		return KeyTooFewPDFs
	case errors.Is(err, convert.ErrUnsupported):
		return KeyUnsupportedFile
	default:
		return KeySomethingWrong
	}
}

// successMessage returns "PDF created at" or "PDF merged at" with the output directory
func successMessage(l *Localization, job *model.ConversionJob) string {
	key := KeyPDFCreatedAt
	if job.Kind == model.KindPDF {
		key = KeyPDFMergedAt
	}
	return fmt.Sprintf(l.GetText(key), job.OutputDir())
}

// selectionSummary describes the current selection under the file list
func selectionSummary(l *Localization, store *selection.Store) string {
	switch store.Len() {
	case 0:
		return l.GetText(KeyNoFilesSelected)
	case 1:
		return fmt.Sprintf(l.GetText(KeySelectedName), store.FirstName())
	default:
		return fmt.Sprintf(l.GetText(KeyFilesSelected), store.Len())
	}
}

// convertButtonKey returns the label of the main action for the chosen kind
func convertButtonKey(kind model.FileKind) string {
	if kind == model.KindPDF {
		return KeyJoinPDFs
	}
	return KeyConvertToPDF
}

// kindIcon returns the symbol shown at the end of a file row
func kindIcon(kind model.FileKind) string {
	switch kind {
	case model.KindImage:
		return IconImage
	case model.KindPDF:
		return IconPDF
	default:
		return IconUnknown
	}
}
