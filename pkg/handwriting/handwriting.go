// Package handwriting provides the core text-to-handwriting pipeline.
//
// This package implements the complete normalize → layout → render → encode
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Normalize: fold the input text into the supported glyph alphabet
//  2. Layout: wrap, pad, and split the text into square pages
//  3. Render: draw glyph images onto PDF or raster pages
//  4. Encode: serialize raster pages as PNG/JPEG bytes or base64
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := handwriting.NewRunner(cache, nil, logger)
//	opts := handwriting.Options{
//	    Text:       "hello world",
//	    OutputType: handwriting.OutputPDF,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.PDF
//
// For one-off renders without caching, use the package-level convenience:
//
//	result, err := handwriting.Generate(ctx, opts)
package handwriting

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Ananya54321/handwritten/pkg/cache"
	"github.com/Ananya54321/handwritten/pkg/encode"
	"github.com/Ananya54321/handwritten/pkg/errors"
	"github.com/Ananya54321/handwritten/pkg/glyphs"
)

// OutputType selects the artifact the pipeline produces.
type OutputType string

// Supported output types. The raster variants carry the encoding format
// and the transport form separated by a slash.
const (
	OutputPDF     OutputType = "pdf"
	OutputJPEGBuf OutputType = "jpeg/buf"
	OutputPNGBuf  OutputType = "png/buf"
	OutputJPEGB64 OutputType = "jpeg/b64"
	OutputPNGB64  OutputType = "png/b64"
)

// DefaultOutputType is used when Options.OutputType is empty.
const DefaultOutputType = OutputPDF

// SupportedOutputTypes lists every valid output type, for error messages
// and CLI help.
var SupportedOutputTypes = []string{
	string(OutputPDF),
	string(OutputJPEGBuf),
	string(OutputPNGBuf),
	string(OutputJPEGB64),
	string(OutputPNGB64),
}

// ParseOutputType validates an output type string.
func ParseOutputType(s string) (OutputType, error) {
	switch OutputType(s) {
	case OutputPDF, OutputJPEGBuf, OutputPNGBuf, OutputJPEGB64, OutputPNGB64:
		return OutputType(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidOutputType,
		"invalid output type: %q (supported: %s)", s, strings.Join(SupportedOutputTypes, ", "))
}

// IsPDF reports whether the output is a single PDF document.
func (t OutputType) IsPDF() bool {
	return t == OutputPDF
}

// IsBase64 reports whether raster pages are base64-wrapped.
func (t OutputType) IsBase64() bool {
	return t == OutputJPEGB64 || t == OutputPNGB64
}

// Format returns the raster encoding format for non-PDF output types.
func (t OutputType) Format() encode.Format {
	switch t {
	case OutputJPEGBuf, OutputJPEGB64:
		return encode.FormatJPEG
	default:
		return encode.FormatPNG
	}
}

// Ext returns the file extension for artifacts of this output type.
func (t OutputType) Ext() string {
	if t.IsPDF() {
		return "pdf"
	}
	return string(t.Format())
}

// Options contains all configuration for the handwriting pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Text is the input to render. Required.
	Text string `json:"text"`

	// OutputType selects the artifact format. Defaults to pdf.
	OutputType OutputType `json:"output_type,omitempty"`

	// InkColor optionally tints the handwriting (red or blue).
	InkColor string `json:"ink_color,omitempty"`

	// Ruled draws the lined-paper margin decoration over every cell.
	Ruled bool `json:"ruled,omitempty"`

	// Seed makes layout and variant choice reproducible. Zero means a
	// fresh random run, which also disables artifact caching.
	Seed uint64 `json:"seed,omitempty"`

	// NoCache skips the artifact cache even for seeded runs.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Every option is validated here, before any glyph loading or rendering
// starts, so an invalid output type or ink color fails fast.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if strings.TrimSpace(o.Text) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text is required")
	}
	if o.OutputType == "" {
		o.OutputType = DefaultOutputType
	}
	if _, err := ParseOutputType(string(o.OutputType)); err != nil {
		return err
	}
	if _, err := glyphs.ParseInk(o.InkColor); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Ink returns the validated ink color.
func (o *Options) Ink() glyphs.Ink {
	return glyphs.Ink(o.InkColor)
}

// Cacheable reports whether this run's artifact may be cached. Unseeded
// runs draw fresh glyph variants every time, so there is nothing stable
// to cache.
func (o *Options) Cacheable() bool {
	return o.Seed != 0 && !o.NoCache
}

// ArtifactKeyOpts returns the cache key options for this run.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		OutputType: string(o.OutputType),
		InkColor:   o.InkColor,
		Ruled:      o.Ruled,
		Seed:       o.Seed,
	}
}

// Result contains the outputs of a pipeline run. Exactly one of PDF,
// Pages, or PagesBase64 is populated, matching the requested output type.
type Result struct {
	// OutputType echoes the type the artifacts were produced for.
	OutputType OutputType

	// PDF holds the finished document for the pdf output type.
	PDF []byte `json:"pdf,omitempty"`

	// Pages holds encoded page images for the buf output types.
	Pages [][]byte `json:"pages,omitempty"`

	// PagesBase64 holds base64 page images for the b64 output types.
	PagesBase64 []string `json:"pages_base64,omitempty"`

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// PageCount returns the number of pages in the artifact.
func (r *Result) PageCount() int {
	return r.Stats.PageCount
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PageCount int
	Width     int

	GlyphLoadTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
	EncodeTime    time.Duration
}

// CacheInfo tracks artifact cache behavior for a run.
type CacheInfo struct {
	Hit bool   // Whether the artifact came from cache
	Key string // Cache key used, empty for unseeded runs
}
