package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir        = "output_directory"
	KeyOptimizeSize     = "optimize_size"
	KeyMaxDimension     = "max_dimension"
	KeyJPEGQuality      = "jpeg_quality"
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_on_complete"
)

// Default values
const (
	DefaultOptimizeSize     = false
	DefaultMaxDimension     = 2000
	DefaultJPEGQuality      = 90
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
)

// Limits applied by the setters
const (
	MinMaxDimension = 256
	MaxMaxDimension = 10000
	MinJPEGQuality  = 1
	MaxJPEGQuality  = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the last chosen output directory.
// There is no default: an empty value means the user has to pick one.
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDir)
}

// SetOutputDirectory remembers the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOptimizeSize returns whether large images are downscaled
func (s *Settings) GetOptimizeSize() bool {
	return s.app.Preferences().BoolWithFallback(KeyOptimizeSize, DefaultOptimizeSize)
}

// SetOptimizeSize sets whether large images are downscaled
func (s *Settings) SetOptimizeSize(optimize bool) {
	s.app.Preferences().SetBool(KeyOptimizeSize, optimize)
}

// GetMaxDimension returns the largest side an optimized image may keep
func (s *Settings) GetMaxDimension() int {
	value := s.app.Preferences().Int(KeyMaxDimension)
	if value <= 0 {
		s.SetMaxDimension(DefaultMaxDimension)
		return DefaultMaxDimension
	}
	return value
}

// SetMaxDimension sets the largest side an optimized image may keep
func (s *Settings) SetMaxDimension(pixels int) {
	if pixels < MinMaxDimension {
		pixels = MinMaxDimension
	}
	if pixels > MaxMaxDimension {
		pixels = MaxMaxDimension
	}
	s.app.Preferences().SetInt(KeyMaxDimension, pixels)
}

// GetJPEGQuality returns the quality used when embedding pages
func (s *Settings) GetJPEGQuality() int {
	value := s.app.Preferences().Int(KeyJPEGQuality)
	if value <= 0 {
		s.SetJPEGQuality(DefaultJPEGQuality)
		return DefaultJPEGQuality
	}
	return value
}

// SetJPEGQuality sets the quality used when embedding pages
func (s *Settings) SetJPEGQuality(quality int) {
	if quality < MinJPEGQuality {
		quality = MinJPEGQuality
	}
	if quality > MaxJPEGQuality {
		quality = MaxJPEGQuality
	}
	s.app.Preferences().SetInt(KeyJPEGQuality, quality)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether the output is revealed after a successful run
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether the output is revealed after a successful run
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
