package convert

import (
	"context"

	"github.com/ytget/pdf-maker/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionJob))
	Validate(req Request) (string, error)
	Convert(ctx context.Context, req Request) (*model.ConversionJob, error)
	SetMaxDimension(pixels int)
	SetJPEGQuality(quality int)
}
